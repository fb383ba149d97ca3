package annotate

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/wayfinder/search"
	"github.com/katalvlaran/wayfinder/terrain"
)

// Offset returns the byte position of c in a map file of the given dimension
// with CRLF row terminators.
func Offset(c terrain.Coord, dim int) int64 {
	return int64(c.Row)*int64(dim+terminatorLen) + int64(c.Col)
}

// Mark writes PathMarker at the offset of every cell in path (end first)
// except the end cell itself. A single-cell path is marked.
func Mark(w io.WriterAt, path []terrain.Coord, dim int) error {
	cells := path
	if len(cells) > 1 {
		cells = cells[1:]
	}
	mark := []byte{PathMarker}
	for _, c := range cells {
		if _, err := w.WriteAt(mark, Offset(c, dim)); err != nil {
			return fmt.Errorf("%w: mark %s: %v", ErrIO, c, err)
		}
	}

	return nil
}

// CheckLayout verifies that r holds dim rows of dim cells, each ended by
// "\r\n", so that Offset addresses the right bytes. size is the length of
// r in bytes.
func CheckLayout(r io.ReaderAt, size int64, dim int) error {
	rowLen := int64(dim + terminatorLen)
	if want := int64(dim) * rowLen; size != want {
		return fmt.Errorf("%w: %d bytes, want %d for a %dx%d map", ErrLayout, size, want, dim, dim)
	}
	term := make([]byte, terminatorLen)
	for row := 0; row < dim; row++ {
		if _, err := r.ReadAt(term, int64(row)*rowLen+int64(dim)); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrIO, row, err)
		}
		if term[0] != '\r' || term[1] != '\n' {
			return fmt.Errorf("%w: row %d does not end in CRLF", ErrLayout, row)
		}
	}

	return nil
}

// MarkFile opens name for writing and marks path in place. The file must
// pass CheckLayout; otherwise nothing is written.
func MarkFile(name string, path []terrain.Coord, dim int) (err error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrIO, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := CheckLayout(f, info.Size(), dim); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return Mark(f, path, dim)
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrIO, cerr)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("%w: copy %s: %v", ErrIO, src, err)
	}

	return nil
}

// Annotate reconstructs the path of res and marks it in the file at name,
// which must hold the map m was parsed from. The path is returned end first.
func Annotate(m *terrain.Map, res *search.Result, name string) ([]terrain.Coord, error) {
	path, err := Reconstruct(m, res)
	if err != nil {
		return nil, err
	}
	if err := MarkFile(name, path, m.Dim()); err != nil {
		return path, err
	}

	return path, nil
}
