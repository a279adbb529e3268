// Package cli implements the strcount command: argument processing, the
// counting run and the mapping of failures to user messages and exit codes.
package cli

import "fmt"

// Argument messages.
const (
	MsgHelp             = "There should be one argument giving the file path."
	MsgFileDoesNotExist = "File does not exist."
	MsgNoAccess         = "You don't have access to that file."
	MsgNoMainPart       = "The file name only has an extension, there is nothing to search for."
	MsgPathTooLong      = "The path is too long."
	MsgUnexpected       = "There was an unexpected fault related to the argument, please contact support."
)

// Processing messages.
const (
	MsgUnexpectedNoFile   = "Although the file was firstly found, it has been removed during processing."
	MsgUnexpectedNoAccess = "Although access was firstly granted, it has been revoked during processing."
	MsgProblemReading     = "There was an unexpected problem reading the file."
	MsgUnknownError       = "There was an unexpected error."
)

// Successful formats the result line.
func Successful(n uint64, pattern, fileName string) string {
	return fmt.Sprintf("There were %d instances of %s in file %s", n, pattern, fileName)
}
