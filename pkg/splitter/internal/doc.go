// Package internal contains infrastructure shared by the splitter packages:
// structured logging and message localization. SDL rendering helpers live in
// the render sub-package so that the cgo-free core can use this package.
// Types and functions in this package are not part of the public API.
package internal
