package rawg

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraphs and breaks", "<p>Line1<br>Line2</p><p>Next</p>", "Line1\nLine2\n\nNext"},
		{"self closing break", "A<br/>B<BR />C", "A\nB\nC"},
		{"paragraph attributes", `<p class="intro">Hello</p>`, "Hello"},
		{"entities decoded after tags", "<p>Tom &amp; Jerry &lt;3</p>", "Tom & Jerry <3"},
		{"escaped markup stays text", "&lt;b&gt;bold&lt;/b&gt;", "<b>bold</b>"},
		{"other tags stripped", "<h3>Plot</h3><ul><li>One</li></ul>", "PlotOne"},
		{"pre is not a paragraph", "<pre>code</pre>", "code"},
		{"blank", "   ", ""},
		{"plain text", "  just text  ", "just text"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripHTML(tc.input); got != tc.want {
				t.Fatalf("StripHTML(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestDescribePrefersRawDescription(t *testing.T) {
	got := describe(detailResponse{DescriptionRaw: "Plain", Description: "<p>Html</p>"})
	if got != "Plain" {
		t.Fatalf("expected raw description, got %q", got)
	}

	got = describe(detailResponse{DescriptionRaw: "  ", Description: "<p>Html</p>"})
	if got != "Html" {
		t.Fatalf("expected stripped html fallback, got %q", got)
	}
}
