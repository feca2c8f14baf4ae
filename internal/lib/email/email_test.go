package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// previewData holds sample variables for every template.
var previewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "Ada",
	},
}

func TestRenderTemplate_Previews(t *testing.T) {
	for name, data := range previewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := RenderTemplate(name, data)
			require.NoError(t, err)
			assert.Contains(t, html, "<html")
		})
	}
}

func TestRenderTemplate_Welcome(t *testing.T) {
	html, err := RenderTemplate(TemplateWelcome, map[string]string{"UserFirstName": "<Grace>"})
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome, &lt;Grace&gt;!")
}

func TestRenderTemplate_Unknown(t *testing.T) {
	_, err := RenderTemplate(Template("missing"), nil)
	assert.ErrorContains(t, err, "failed to parse email template missing")
}
