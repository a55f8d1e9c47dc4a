//go:build linux

package mapfile

import (
	"bytes"
	"os"
	"testing"
)

func TestOpenSpansPages(t *testing.T) {
	line := []byte("Las_Palmas_de_Gran_Canaria;-12.3\n")
	content := bytes.Repeat(line, 3*os.Getpagesize()/len(line)+1)
	m, err := Open(writeTemp(t, string(content)))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	if !bytes.Equal(m.Data(), content) {
		t.Errorf("mapped %d bytes differ from the %d written", len(m.Data()), len(content))
	}
}
