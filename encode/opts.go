package encode

import "github.com/csd-format/go-csd/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := newEncState(opts)
	return es.format
}

// Depth sets the nesting depth at which the node is written, so that the
// output can be embedded in an enclosing sequence.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// InitialCapacity sets the starting capacity of the buffer used by
// EncodeBytes.
func InitialCapacity(n int) EncodeOption {
	return func(es *EncState) { es.initCap = n }
}
