// Package rand generates random notebooks, to exercise redaction over many cell shapes.
package rand

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oneconcern/nbredact/pkg/notebook"
)

// Labels picked when tagging cells. Some match the default redaction tags.
var Labels = []string{"hide", "todo", "slow", "skip", "exercise"}

var (
	onceSource  sync.Once
	rgen        *rand.Rand
	onceLetters sync.Once
	randMutex   sync.Mutex
	letters     []byte
)

func seed() {
	src := rand.NewSource(time.Now().UnixNano())
	rgen = rand.New(src) // #nosec
}

func makeLetters() {
	// 0-9 U a-z padded with "a" to cover the range of uint8
	letters = bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz0123456789a"), 7)
}

func intn(n int) int {
	onceSource.Do(seed)
	randMutex.Lock()
	defer randMutex.Unlock()
	return rgen.Intn(n)
}

// LetterString returns a random string picked in the [0-9]|[a-z] range
func LetterString(n int) string {
	onceSource.Do(seed)
	onceLetters.Do(makeLetters)
	buf := make([]byte, n)
	randMutex.Lock()
	_, _ = rgen.Read(buf)
	randMutex.Unlock()
	for i, b := range buf {
		buf[i] = letters[b]
	}
	return string(buf)
}

// Source returns random program text, up to 5 lines
func Source() notebook.Source {
	lines := make([]string, intn(6))
	for i := range lines {
		lines[i] = LetterString(1+intn(10)) + " = " + LetterString(1+intn(20))
	}
	return notebook.NewSource(strings.Join(lines, "\n"))
}

// Tags returns a random subset of Labels, possibly empty
func Tags() []string {
	var tags []string
	for _, label := range Labels {
		if intn(3) == 0 {
			tags = append(tags, label)
		}
	}
	return tags
}

// Cell returns a random cell: any type, with or without tags, outputs and execution count
func Cell() *notebook.Cell {
	types := []notebook.CellType{notebook.Code, notebook.Code, notebook.Markdown, notebook.Raw}
	cell := &notebook.Cell{
		Type:     types[intn(len(types))],
		Source:   Source(),
		Metadata: map[string]notebook.RawValue{},
	}
	if intn(4) == 0 {
		cell.Metadata["collapsed"] = notebook.RawValue(`true`)
	}
	if intn(3) > 0 {
		tags := Tags()
		quoted := make([]string, len(tags))
		for i, tag := range tags {
			quoted[i] = fmt.Sprintf("%q", tag)
		}
		cell.Metadata[notebook.TagsKey] = notebook.RawValue("[" + strings.Join(quoted, ",") + "]")
	}
	if cell.Type == notebook.Code {
		cell.Outputs = []notebook.Output{}
		for i := intn(3); i > 0; i-- {
			cell.Outputs = append(cell.Outputs,
				notebook.RawValue(fmt.Sprintf(`{"output_type":"stream","name":"stdout","text":[%q]}`, LetterString(8))))
		}
		if intn(2) == 0 {
			n := 1 + intn(100)
			cell.ExecutionCount = &n
		}
	}
	return cell
}

// Notebook returns a random nbformat v4 notebook with n cells
func Notebook(n int) *notebook.Notebook {
	nb := &notebook.Notebook{
		NBFormat:      notebook.MinFormat,
		NBFormatMinor: 5,
		Metadata: map[string]notebook.RawValue{
			"kernelspec": notebook.RawValue(`{"name":"python3","display_name":"Python 3","language":"python"}`),
		},
		Cells: make([]*notebook.Cell, n),
	}
	for i := range nb.Cells {
		nb.Cells[i] = Cell()
	}
	return nb
}
