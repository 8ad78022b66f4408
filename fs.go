package main

import "io/fs"

// FS is what the game reads data files through: the embedded data folder in
// released builds, or os.DirFS(".") when running from a checkout, where the
// files can be edited while the game runs.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
