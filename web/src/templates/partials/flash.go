package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/signon/internal/view"
)

// Flash renders the pending success and error messages. It renders nothing when
// there are none.
func Flash(data view.FlashData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.Empty() {
			return nil
		}
		if _, err := io.WriteString(w, `<div class="flash" role="alert">`); err != nil {
			return err
		}
		if err := writeMessages(w, "flash-success", data.Success); err != nil {
			return err
		}
		if err := writeMessages(w, "flash-error", data.Error); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func writeMessages(w io.Writer, class string, messages []string) error {
	for _, msg := range messages {
		if _, err := io.WriteString(w, `<p class="`+class+`">`+templ.EscapeString(msg)+`</p>`); err != nil {
			return err
		}
	}
	return nil
}
