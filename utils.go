package main

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"github.com/goccy/go-yaml"
	"io"
	"os"
	"time"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		Check(file.Close())
		return true
	} else {
		return false
	}
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, v)
	if err != nil {
		Check(fmt.Errorf("invalid yaml in %s: %w", filename, err))
	}
}

// Serialize writes data in a fixed binary format. data must have a fixed size
// (no ints, slices, maps or strings inside).
func Serialize(w io.Writer, data any) {
	err := binary.Write(w, binary.LittleEndian, data)
	Check(err)
}

func Deserialize(r io.Reader, data any) {
	err := binary.Read(r, binary.LittleEndian, data)
	Check(err)
}

func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	if len(s) > 0 {
		Serialize(w, s)
	}
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	if n < 0 {
		Check(fmt.Errorf("invalid slice length: %d", n))
		return
	}
	// A corrupt length must not allocate more than what is left to read.
	var zero T
	elemSize := int64(binary.Size(zero))
	if elemSize <= 0 {
		Check(fmt.Errorf("type %T has no fixed binary size", zero))
		return
	}
	if lr, ok := r.(interface{ Len() int }); ok && n > int64(lr.Len())/elemSize {
		Check(fmt.Errorf("slice length %d needs %d bytes, only %d left", n,
			n*elemSize, lr.Len()))
		return
	}
	*s = make([]T, n)
	if n > 0 {
		Deserialize(r, *s)
	}
}

// Zip compresses data as the single entry of a zip archive.
func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	f, err := zw.Create("data")
	Check(err)
	_, err = f.Write(data)
	Check(err)
	Check(zw.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	Check(err)
	if err != nil {
		return nil
	}
	if len(zr.File) != 1 {
		Check(fmt.Errorf("expected 1 file in archive, got %d", len(zr.File)))
		return nil
	}
	f, err := zr.File[0].Open()
	Check(err)
	if err != nil {
		return nil
	}
	defer func(f io.ReadCloser) { Check(f.Close()) }(f)
	unzipped, err := io.ReadAll(f)
	Check(err)
	return unzipped
}

// FolderWatcher notices when files in a folder change. It's for developer
// mode, where the data folder is edited while the game runs.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
