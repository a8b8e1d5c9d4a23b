package virtual

import (
	"io"
	"io/fs"
	"path"
	"strings"
)

// virtualFile wraps an underlying file under a different name.
type virtualFile struct {
	fs.File

	name string // Virtual name of the file
}

// Stat returns information about the file.
func (f virtualFile) Stat() (fs.FileInfo, error) {
	var (
		fi  virtualFileInfo
		err error
	)
	fi.FileInfo, err = f.File.Stat()
	fi.name = f.name

	return fi, err
}

// Read reads up to len(b) bytes from the File. It returns the number of bytes read
// and any error encountered. At end of file, Read returns 0, io.EOF.
func (f *virtualFile) Read(b []byte) (int, error) {
	return f.File.Read(b)
}

// virtualFileInfo holds the metadata about the virtual file.
type virtualFileInfo struct {
	fs.FileInfo
	name string
}

// Name returns the base name of the file.
func (fi virtualFileInfo) Name() string {
	return fi.name
}

// renderFile is a specialization of virtualFile holding rendered content.
// The FileInfo is captured at render time because the underlying file is
// closed once rendering is done.
type renderFile struct {
	virtualFile

	info   fs.FileInfo   // Info of the underlying file, taken before close
	reader io.ReadSeeker // Rendered data to serve
	size   int64         // Length of data
}

// Stat returns a FileInfo describing the file.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	fi := virtualFileInfo{FileInfo: f.info, name: f.name}
	return renderFileInfo{FileInfo: fi, size: f.size}, nil
}

// Read reads up to len(b) bytes from the File. It returns the number of bytes read
// and any error encountered. At end of file, Read returns 0, io.EOF.
func (f *renderFile) Read(b []byte) (int, error) {
	return f.reader.Read(b)
}

// Seek sets the offset for the next Read or Write to offset, interpreted according
// to whence: io.SeekStart means relative to the start of the file, io.SeekCurrent
// means relative to the current offset, and io.SeekEnd means relative to the end.
// Seek returns the new offset relative to the start of the file and an error, if any.
func (f *renderFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

// renderFileInfo holds the metadata about the file and overrides the size,
// which is important for reporting the length of the rendered data.
type renderFileInfo struct {
	fs.FileInfo

	size int64 // Size of file data
}

// Size reports the length of the file.
func (rfi renderFileInfo) Size() int64 {
	return rfi.size
}

// virtualDirEntry is a lightweight directory entry for virtual files.
// It is not as filled out as if you called Stat on the file itself; in
// particular the size of a rendered page is not known until it is opened.
type virtualDirEntry struct {
	virtualFileInfo
}

// Type returns the type bits for the entry.
// The type bits are a subset of the usual FileMode bits, those returned by the FileMode.Type method.
func (di virtualDirEntry) Type() fs.FileMode {
	return di.virtualFileInfo.Mode().Type()
}

// Info returns the FileInfo for the file or subdirectory described by the entry.
// The returned info is from the time of the directory read.
func (di virtualDirEntry) Info() (fs.FileInfo, error) {
	return di.virtualFileInfo, nil
}

// virtualDir wraps an underlying directory so that listings show the
// virtual view: Markdown sources appear under their rendered ".html" names,
// and hidden or special files do not appear at all.
type virtualDir struct {
	fs.File

	path    string
	vfs     *FS
	entries []fs.DirEntry
	offset  int
}

// ReadDir reads the contents of the directory and returns a slice of up to
// n DirEntry values, following the fs.ReadDirFile contract.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.entries == nil {
		rdf, ok := d.File.(fs.ReadDirFile)
		if !ok {
			return nil, &fs.PathError{Op: "readdir", Path: d.path, Err: fs.ErrInvalid}
		}
		raw, err := rdf.ReadDir(-1)
		if err != nil {
			return nil, err
		}
		d.entries = d.transform(raw)
	}
	if n <= 0 {
		entries := d.entries[d.offset:]
		d.offset = len(d.entries)
		return entries, nil
	}
	if d.offset >= len(d.entries) {
		return nil, io.EOF
	}
	end := d.offset + n
	if end > len(d.entries) {
		end = len(d.entries)
	}
	entries := d.entries[d.offset:end]
	d.offset = end
	return entries, nil
}

// transform maps the raw directory listing to the virtual view.
func (d *virtualDir) transform(raw []fs.DirEntry) []fs.DirEntry {
	var (
		out  []fs.DirEntry
		seen = make(map[string]bool, len(raw))
	)
	for _, entry := range raw {
		seen[entry.Name()] = true
	}
	produced := make(map[string]bool, len(raw))
	for _, entry := range raw {
		name := entry.Name()
		full := path.Join(d.path, name)
		if isHiddenFile(full) || containsSpecialFile(full) {
			continue
		}
		if !entry.IsDir() && path.Ext(name) == ".md" {
			virtualName := strings.TrimSuffix(name, ".md") + ".html"
			if d.path == "." && name == "readme.md" {
				virtualName = "index.html"
			}
			// rendered name already backed by a real file; hide the source
			if seen[virtualName] || produced[virtualName] {
				continue
			}
			produced[virtualName] = true
			fi, err := entry.Info()
			if err != nil {
				continue
			}
			out = append(out, virtualDirEntry{virtualFileInfo{FileInfo: fi, name: virtualName}})
			continue
		}
		out = append(out, entry)
	}
	return out
}
