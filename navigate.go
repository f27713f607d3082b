package ulpforms

import (
	"bytes"
	"html/template"
)

var formPostTemplate = template.Must(template.New("form_post").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body onload="document.forms[0].submit()">
<form method="POST" action="{{.Action}}" style="display:none">
<input type="hidden" name="connection" value="{{.Connection}}">
<input type="hidden" name="state" value="{{.State}}">
<noscript><button type="submit">Continue</button></noscript>
</form>
</body>
</html>
`))

// FormPostNavigator renders the cross-origin-safe redirect document: a
// hidden form carrying connection and state, auto-submitted as a standard
// POST navigation. Action may be empty, which posts back to the current URL.
type FormPostNavigator struct {
	Action string
}

// Render produces the full redirect document.
func (n FormPostNavigator) Render(connection, state string) ([]byte, error) {
	var buf bytes.Buffer
	err := formPostTemplate.Execute(&buf, struct {
		Action     string
		Connection string
		State      string
	}{n.Action, connection, state})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
