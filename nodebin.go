// Package nodebin compiles level and stage node spreadsheets into the compact
// binary node blobs read by the game.
//
// A blob is a 16-byte header of four uint32 (entry count, string count, string
// section length, total length), a sorted deduplicated string section of
// uint16 length-prefixed names, and one fixed-width record per source row.
// Everything that differs between blob variants, from byte order to enum tables,
// lives in a profile (see package profile).
//
// # Basic Usage
//
// Building a profile from its fixed input to its fixed output:
//
//	p, _ := profile.Load("level")
//	b, _ := nodebin.Build(p, ".", blob.WithLogger(logger))
//	fmt.Printf("%d nodes, fingerprint %016x\n", b.Header().EntryCount, b.Fingerprint())
//
// Compiling rows from any reader:
//
//	b, _ := nodebin.Compile(p, strings.NewReader(csvText))
//
// Reading a written blob back:
//
//	dec, _ := nodebin.NewDecoder(p, data)
//	records, _ := dec.LevelRecords()
//
// # Package Structure
//
// This package wraps the blob, profile, csvrow and compress packages for the
// common cases. Use package blob directly for row-level control.
package nodebin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ctse-tools/nodebin/blob"
	"github.com/ctse-tools/nodebin/compress"
	"github.com/ctse-tools/nodebin/internal/csvrow"
	"github.com/ctse-tools/nodebin/profile"
)

// NewEncoder creates an encoder for the built-in profile with the given name.
func NewEncoder(profileName string, opts ...blob.EncoderOption) (*blob.Encoder, error) {
	p, err := profile.Load(profileName)
	if err != nil {
		return nil, err
	}

	return blob.NewEncoder(p, opts...)
}

// Compile reads delimited rows from r using the profile's delimiter and encodes
// them into a blob.
func Compile(p *profile.Profile, r io.Reader, opts ...blob.EncoderOption) (*blob.Blob, error) {
	enc, err := blob.NewEncoder(p, opts...)
	if err != nil {
		return nil, err
	}

	rows, err := csvrow.Read(r, p.Comma())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Input, err)
	}

	b, err := enc.Encode(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Input, err)
	}

	return b, nil
}

// Payload returns the bytes written for b: the blob itself, or the blob
// compressed with the profile's codec.
func Payload(p *profile.Profile, b *blob.Blob) ([]byte, error) {
	codec, err := compress.CreateCodec(p.Compression, "output")
	if err != nil {
		return nil, err
	}

	return codec.Compress(b.Bytes())
}

// NewDecoder undoes the profile's compression and opens a decoder on data.
func NewDecoder(p *profile.Profile, data []byte) (*blob.Decoder, error) {
	codec, err := compress.CreateCodec(p.Compression, "output")
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return blob.NewDecoder(raw, p.Layout, p.Engine())
}

// Build compiles the profile's input file into its output file. Both paths are
// resolved against dir.
//
// The output is replaced only once the whole blob is assembled: a failed build
// leaves any previous output untouched.
func Build(p *profile.Profile, dir string, opts ...blob.EncoderOption) (*blob.Blob, error) {
	in, err := os.Open(filepath.Join(dir, p.Input))
	if err != nil {
		return nil, err
	}
	defer in.Close()

	b, err := Compile(p, in, opts...)
	if err != nil {
		return nil, err
	}

	payload, err := Payload(p, b)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(filepath.Join(dir, p.Output), payload); err != nil {
		return nil, err
	}

	return b, nil
}

// Open reads the profile's output file from dir and opens a decoder on it.
func Open(p *profile.Profile, dir string) (*blob.Decoder, error) {
	data, err := os.ReadFile(filepath.Join(dir, p.Output))
	if err != nil {
		return nil, err
	}

	return NewDecoder(p, data)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint: errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
