package devtools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHTML(t *testing.T) {
	lv, res := generated(t, 5)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, lv, DumpOptions{StartRoom: res.StartRoom, Player: res.Player, ShowPlayer: true}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Level 1</title>")
	assert.Contains(t, out, `<span class="player">@</span>`)
	assert.Contains(t, out, `<span class="wall">#</span>`)
	assert.Equal(t, strings.Count(out, `<div class="map-row">`), strings.Count(out, "</div>\n")-2)
}
