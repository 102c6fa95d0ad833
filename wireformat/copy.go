package wireformat

// Copy decompresses rec's owner name and rdata out of src and re-pushes
// them into dst via codec, renormalizing any compression pointers in the
// process (the copy always re-derives its own, dst-local, pointers — it
// never reuses src's). It returns the record as it now stands in dst.
func Copy(dst, src *Packet, rec Record, codec RDataCodec) (Record, error) {
	name, err := src.Name(rec)
	if err != nil {
		return Record{}, err
	}

	if rec.IsQuestion {
		return dst.PushQuestion(name, rec.Type, rec.Class)
	}

	body := codec.Recode(rec.Type, src.buf[:src.end], rec.RDataOffset, rec.RDataLength)
	return dst.PushRecord(rec.Section, name, rec.Type, rec.Class, rec.TTL, body)
}

// Renormalize rebuilds src as a fresh Packet of the same capacity, with
// every record re-pushed through Copy — stripping any compression that
// pointed at structure re-encoding will not reproduce, and leaving the
// result with the smallest dictionary-driven encoding this codec can
// produce on its own.
func Renormalize(src *Packet, codec RDataCodec) (*Packet, error) {
	dst := NewFromBuffer(make([]byte, len(src.buf)))
	dst.SetID(src.ID())
	dst.SetFlags(src.Flags())

	it := src.Iterate(Filter{Sections: MaskAll, Type: TypeAll, Class: ClassAny})
	for {
		rec, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, err := Copy(dst, src, rec, codec); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
