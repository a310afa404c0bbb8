package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := map[string]struct {
		input string
		want  string
	}{
		"plain text":        {input: "Dom", want: "Dom"},
		"trims whitespace":  {input: "  ul. Prosta 1  ", want: "ul. Prosta 1"},
		"strips tags":       {input: "<b>Biuro</b>", want: "Biuro"},
		"drops script":      {input: `<script>alert(1)</script>Dom`, want: "Dom"},
		"keeps ampersand":   {input: "Kowalski & Syn", want: "Kowalski & Syn"},
		"keeps polish text": {input: "Łódź", want: "Łódź"},
		"only markup":       {input: "<br/>", want: ""},
		"escaped script":    {input: "&lt;script&gt;alert(1)&lt;/script&gt;", want: ""},
		"escaped tags":      {input: "&lt;b&gt;Biuro&lt;/b&gt;", want: "Biuro"},
		"double escaped":    {input: "&amp;lt;i&amp;gt;Dom&amp;lt;/i&amp;gt;", want: "Dom"},
		"less than sign":    {input: "a < b", want: "a < b"},
		"empty":             {input: "", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.Sanitize(tt.input))
		})
	}
}
