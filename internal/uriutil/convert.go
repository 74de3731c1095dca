// Package uriutil converts between file:// URIs and file system paths.
package uriutil

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// PathToURI converts a file system path to a file:// URI.
// Handles both Windows and POSIX paths:
//   - C:\proj -> file:///C:/proj
//   - /home/user -> file:///home/user
//   - \\server\share -> file://server/share (UNC)
//   - /Foo Bar -> file:///Foo%20Bar (percent-encoded)
func PathToURI(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	// Windows UNC path: \\server\share\path -> file://server/share/path
	if runtime.GOOS == "windows" && strings.HasPrefix(absPath, `\\`) {
		uncPath := filepath.ToSlash(strings.TrimPrefix(absPath, `\\`))
		segments := strings.Split(uncPath, "/")
		for i, seg := range segments {
			segments[i] = url.PathEscape(seg)
		}
		return "file://" + strings.Join(segments, "/")
	}

	absPath = filepath.ToSlash(absPath)

	// Windows drive paths need a leading slash: C:/proj -> /C:/proj
	if !strings.HasPrefix(absPath, "/") {
		absPath = "/" + absPath
	}

	segments := strings.Split(absPath, "/")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = url.PathEscape(seg)
		}
	}

	return "file://" + strings.Join(segments, "/")
}

// URIToPath converts a file:// URI to a file system path.
// Percent-decodes segments and handles Windows drive letters and UNC hosts.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uriFallback(uri)
	}

	path := parsed.Path

	// UNC: file://server/share/path
	if parsed.Host != "" {
		if runtime.GOOS == "windows" {
			host, _ := url.PathUnescape(parsed.Host)
			pathDecoded, _ := url.PathUnescape(path)
			return `\\` + host + strings.ReplaceAll(pathDecoded, "/", `\`)
		}
		return parsed.Host + path
	}

	decodedPath, err := url.PathUnescape(path)
	if err != nil {
		decodedPath = path
	}

	// Windows URIs carry the drive as /C:/proj
	if len(decodedPath) >= 3 && decodedPath[0] == '/' && decodedPath[2] == ':' {
		decodedPath = decodedPath[1:]
	}

	return filepath.FromSlash(decodedPath)
}

// uriFallback handles URIs that fail to parse, leniently
func uriFallback(uri string) string {
	path := uri
	if strings.HasPrefix(path, "file://") {
		path = path[7:]
	}
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path)
}
