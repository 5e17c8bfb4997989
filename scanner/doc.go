// Package scanner batch-processes a directory of API documentation files.
//
// A [Scanner] enumerates the .json/.yaml/.yml entries of a directory,
// decodes each one permissively (invalid UTF-8 byte sequences are replaced,
// never fatal), classifies the document and dispatches it to the matching
// analyzer extractor. Per-file failures become entries in the batch error
// list; they never abort the scan. The complete [BatchResult] is returned
// once every file has been processed.
package scanner
