package bytepack

// Size returns the total byte length the format's layout occupies. An
// empty items list has size 0.
func (f Format) Size() int {
	n := 0
	for _, it := range f.Items {
		c := codecs[it.Code]
		if c.variable {
			n += it.Repeat
		} else {
			n += it.Repeat * c.size
		}
	}
	return n
}

// CalcSize parses format and returns the total byte length its layout
// occupies.
func CalcSize(format string) (int, error) {
	f, err := Parse(format)
	if err != nil {
		return 0, err
	}
	return f.Size(), nil
}
