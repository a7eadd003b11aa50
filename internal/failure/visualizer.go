package failure

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const (
	showDetails           = "Show Error Details"
	hideDetails           = "Hide Error Details"
	additionalInformation = "Additional Information"
)

// ErrorHTML renders the standard error block for a failed component. qualifier
// must be unique per page, it keys the show/hide details toggle. message
// overrides the text taken from err.
func ErrorHTML(err error, qualifier, message string) string {
	var additional string

	var display *Error
	if errors.As(err, &display) {
		if message == "" {
			message = display.DisplayMessage
		}
		additional = display.AdditionalInformation()
	}
	if message == "" {
		message = DefaultTitle
	}

	details := DefaultTitle
	if root := Root(err); root != nil {
		details = root.Error()
	}

	var b strings.Builder
	b.WriteString(`<table border="0"><tr><td valign="top" width="1%"><img src="/_layouts/images/errlg.gif" border="0"/></td><td style="padding-top:8px" valign="top">`)
	b.WriteString(html.EscapeString(message))
	fmt.Fprintf(&b,
		`<br /><br /><a id="_errorMsgLabel%[1]s" href="#" onclick="javascript:if(_errorMsgLabel%[1]s.innerHTML=='%[2]s'){_errorMsgDiv%[1]s.style.display='inline';_errorMsgLabel%[1]s.innerHTML='%[3]s';}else{_errorMsgDiv%[1]s.style.display='none';_errorMsgLabel%[1]s.innerHTML='%[2]s';}">%[2]s</a><br />`,
		qualifier, showDetails, hideDetails,
	)
	fmt.Fprintf(&b, `<div style="display:none;" id="_errorMsgDiv%s">%s`, qualifier, html.EscapeString(details))
	if additional != "" {
		fmt.Fprintf(&b, `<br /><br /><a href="#">%s</a><br />`, additionalInformation)
		fmt.Fprintf(&b, "<div>%s</div><br />", additional)
	}
	b.WriteString("</div><br>")
	b.WriteString("</td></tr></table>")

	return b.String()
}
