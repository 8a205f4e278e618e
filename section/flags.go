package section

import (
	"fmt"
	"strings"
)

// FlagBit binds a boolean column to its mask in the record flags byte.
type FlagBit struct {
	Column string `yaml:"column"`
	Mask   uint8  `yaml:"mask"`
}

// FlagSpec describes how the boolean columns of a row fold into the flags byte.
//
// The bit assignment differs between profiles (the stage profiles reorder the
// collect item bits), so it is carried as data rather than constants. A value is
// true only when it equals TrueToken exactly, or case-insensitively when FoldCase
// is set. Anything else, including "1" or "yes", is false.
type FlagSpec struct {
	Bits      []FlagBit `yaml:"bits"`
	TrueToken string    `yaml:"true_token"`
	FoldCase  bool      `yaml:"fold_case"`
}

// Validate checks that every mask is a single bit and no bit or column is used twice.
func (s *FlagSpec) Validate() error {
	if s.TrueToken == "" {
		return fmt.Errorf("flags: empty true token")
	}

	var used uint8
	columns := make(map[string]struct{}, len(s.Bits))

	for _, bit := range s.Bits {
		if bit.Mask == 0 || bit.Mask&(bit.Mask-1) != 0 {
			return fmt.Errorf("flags: mask 0x%02x of %q is not a single bit", bit.Mask, bit.Column)
		}

		if used&bit.Mask != 0 {
			return fmt.Errorf("flags: mask 0x%02x assigned twice", bit.Mask)
		}
		used |= bit.Mask

		if _, dup := columns[bit.Column]; dup {
			return fmt.Errorf("flags: column %q assigned twice", bit.Column)
		}
		columns[bit.Column] = struct{}{}
	}

	return nil
}

// IsTrue applies the truth test to a raw field value.
func (s *FlagSpec) IsTrue(value string) bool {
	if s.FoldCase {
		return strings.ToLower(value) == strings.ToLower(s.TrueToken)
	}

	return value == s.TrueToken
}

// Pack folds the boolean columns of a row into the flags byte.
//
// lookup returns a column value and whether the column exists. Columns that do
// not exist count as false and are returned in missing, in bit order, so the
// caller can report them.
func (s *FlagSpec) Pack(lookup func(column string) (string, bool)) (flags uint8, missing []string) {
	for _, bit := range s.Bits {
		value, ok := lookup(bit.Column)
		if !ok {
			missing = append(missing, bit.Column)
			continue
		}

		if s.IsTrue(value) {
			flags |= bit.Mask
		}
	}

	return flags, missing
}

// Has reports whether the flag bound to column is set in flags.
func (s *FlagSpec) Has(flags uint8, column string) bool {
	for _, bit := range s.Bits {
		if bit.Column == column {
			return flags&bit.Mask != 0
		}
	}

	return false
}
