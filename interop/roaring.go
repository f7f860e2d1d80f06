package interop

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitset"
	"github.com/hupe1980/bitset/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the set bits of b.
//
// Roaring bitmaps hold uint32 values; a set bit above math.MaxUint32 is
// rejected with an error wrapping bitset.ErrInvalidArgument.
func ToRoaring(b *bitset.Bitset) (*roaring.Bitmap, error) {
	indices := b.Indices()
	values := make([]uint32, len(indices))
	for n, i := range indices {
		v, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("%w: bit %d does not fit a roaring bitmap: %w", bitset.ErrInvalidArgument, i, err)
		}
		values[n] = v
	}

	rb := roaring.New()
	rb.AddMany(values) // sorted input
	return rb, nil
}

// FromRoaring returns a bitset holding the values of rb. It is sized once
// from rb's maximum.
func FromRoaring(rb *roaring.Bitmap) (*bitset.Bitset, error) {
	if rb.IsEmpty() {
		return bitset.New(), nil
	}

	highest, err := conv.Uint32ToInt(rb.Maximum())
	if err != nil {
		return nil, err
	}

	b, err := bitset.Alloc(highest, false)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		i, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, err
		}
		if err := b.Set(i); err != nil {
			return nil, err
		}
	}
	return b, nil
}
