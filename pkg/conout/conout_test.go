package conout

import (
	"bytes"
	"strings"
	"testing"
)

func TestStepBanners(t *testing.T) {
	testCases := []struct {
		name   string
		print  func(c *Console)
		marker string
	}{
		{
			name:   "Info",
			print:  func(c *Console) { c.PrintlnInfoStep("checking %s", "config") },
			marker: "[*] checking config",
		},
		{
			name:   "Ok",
			print:  func(c *Console) { c.PrintlnOkStep("uploaded") },
			marker: "[+] uploaded",
		},
		{
			name:   "Warn",
			print:  func(c *Console) { c.PrintlnWarnStep("no files") },
			marker: "[!] no files",
		},
		{
			name:   "Error",
			print:  func(c *Console) { c.PrintlnErrorStep("boom") },
			marker: "[-] boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			// A bytes.Buffer is not a terminal, colors stay off
			c := NewConsole(&buf)
			tc.print(c)
			if got := buf.String(); got != tc.marker+"\n" {
				t.Errorf("banner = %q, want %q", got, tc.marker+"\n")
			}
		})
	}
}

func TestRuleWidth(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Rule()
	if got := strings.TrimSuffix(buf.String(), "\n"); len(got) != ruleWidth {
		t.Errorf("rule is %d chars, want %d", len(got), ruleWidth)
	}
}

func TestDetails(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Details("Connection", [][2]string{
		{"Host", "files.internal.lan"},
		{"Port", "22"},
	})
	out := buf.String()
	if !strings.HasPrefix(out, "Connection\n") {
		t.Errorf("missing title, got %q", out)
	}
	for _, want := range []string{"Host:", "files.internal.lan", "Port:", "22"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail block missing %q in %q", want, out)
		}
	}
}
