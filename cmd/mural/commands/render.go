package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"mural/internal/domain"
	"mural/internal/state"
)

type palette struct{ id, liked, reset string }

// Palettes keyed by root class. Unknown themes render without colour.
var palettes = map[string]palette{
	"claro":  {id: "\x1b[34m", liked: "\x1b[31m", reset: "\x1b[0m"},
	"escuro": {id: "\x1b[96m", liked: "\x1b[95m", reset: "\x1b[0m"},
}

// paletteFor picks the colours of the first themed root class, or none when w
// is not a terminal.
func paletteFor(w io.Writer) palette {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return palette{}
	}
	for _, class := range appCtx.Root.Classes() {
		if p, ok := palettes[class]; ok {
			return p
		}
	}
	return palette{}
}

func renderFeed(w io.Writer, s state.FeedState) {
	if len(s.Posts) == 0 {
		fmt.Fprintln(w, "(no posts)")
		return
	}
	for _, p := range s.Posts {
		renderPost(w, p)
	}
}

func renderPost(w io.Writer, p domain.Post) {
	c := paletteFor(w)
	heart := "♡"
	if p.LikedByUser {
		heart = c.liked + "♥" + c.reset
	}
	fmt.Fprintf(w, "%s#%d%s  %s %d  %s\n", c.id, p.ID, c.reset, heart, p.LikesCount, p.Content)
}
