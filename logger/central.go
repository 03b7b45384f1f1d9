// This file is part of GoAmiga.
//
// GoAmiga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoAmiga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoAmiga.  If not, see <https://www.gnu.org/licenses/>.

// Package logger provides the central log for the emulation. There is
// deliberately only one log for the entire application; hardware components
// identify themselves through the tag argument of the Log() and Logf()
// functions.
//
// Repeated entries are coalesced into the previous entry with a repeat count,
// which keeps one-shot diagnostics from hardware running at several million
// cycles per second from swamping the log.
package logger

import (
	"io"
)

// Permission implementations say whether the environment asking to log is
// allowed to create new entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow represents unconditional permission to log.
var Allow Permission = allow{}

// the one central log instance.
var central *logger

// maximum number of entries held by the central log.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central log.
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, detail, args...)
	}
}

// Clear removes all entries from the central log.
func Clear() {
	central.clear()
}

// Write the contents of the central log to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent or SetEcho.
func WriteRecent(output io.Writer) {
	central.writeRecent(output)
}

// Tail writes the last number of entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints new entries to io.Writer as they arrive. If writeRecent is
// true the entries since the last WriteRecent are written immediately.
func SetEcho(output io.Writer, writeRecent bool) {
	central.setEcho(output, writeRecent)
}

// BorrowLog runs the supplied function inside the critical section, with
// access to the list of log entries.
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}
