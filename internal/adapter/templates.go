package adapter

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

const layoutHTML = `{{define "layout"}}<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #1a1a1a; color: #e5e5e5; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #262626; border-radius: 8px; overflow: hidden;">
      <div style="background-color: #8b1a1a; padding: 20px; text-align: center;">
        <h1 style="color: #ffffff; margin: 0; font-size: 24px;">Civil CI</h1>
        <p style="color: #d4af37; margin: 5px 0 0 0; font-size: 14px;">{{.Heading}}</p>
      </div>
      <div style="padding: 30px;">{{template "content" .}}</div>
      <div style="background-color: #1a1a1a; padding: 20px; text-align: center; border-top: 1px solid #333333;">
        <p style="color: #6b7280; margin: 0; font-size: 12px;">Civil CI - Civil Citizens Intelligence</p>
      </div>
    </div>
  </body>
</html>{{end}}`

const newCaseHTML = `{{define "content"}}
<table style="width: 100%; border-collapse: collapse;">
  <tr><td style="padding: 8px 0; color: #9ca3af; width: 120px;">Name:</td><td>{{.Case.Name}}</td></tr>
  <tr><td style="padding: 8px 0; color: #9ca3af;">Email:</td><td>{{.Case.Email}}</td></tr>
  {{with .Phone}}<tr><td style="padding: 8px 0; color: #9ca3af;">Phone:</td><td>{{.}}</td></tr>{{end}}
  <tr><td style="padding: 8px 0; color: #9ca3af;">Service:</td><td>{{.Service}}</td></tr>
  <tr><td style="padding: 8px 0; color: #9ca3af;">Urgency:</td><td style="text-transform: uppercase;">{{.Urgency}}</td></tr>
</table>
<h3 style="color: #d4af37;">Case Summary</h3>
<p style="line-height: 1.6; white-space: pre-wrap;">{{.Case.CaseSummary}}</p>
<p style="text-align: center;"><a href="{{.AdminURL}}" style="background-color: #8b1a1a; color: #ffffff; padding: 12px 30px; text-decoration: none; border-radius: 6px;">Review in Admin Portal</a></p>
<p style="color: #6b7280; font-size: 12px;">Case ID: {{.Case.ID}}</p>
{{end}}`

const newCaseText = `New Case Review Submission

Name: {{.Case.Name}}
Email: {{.Case.Email}}
{{with .Phone}}Phone: {{.}}
{{end}}Service: {{.Service}}
Urgency: {{.Urgency}}

Case Summary:
{{.Case.CaseSummary}}

Review in Admin Portal: {{.AdminURL}}

Case ID: {{.Case.ID}}
`

const confirmationHTML = `{{define "content"}}
<h2>Thank you, {{.Case.Name}}</h2>
<p style="color: #9ca3af; line-height: 1.8;">We have received your case review request. Your submission is now under review by our team.</p>
<p style="color: #9ca3af; font-size: 14px;">Your Case Reference:</p>
<p style="color: #d4af37; font-size: 18px; font-family: monospace;">{{.Reference}}</p>
<h3>What happens next?</h3>
<ol style="color: #9ca3af; line-height: 2;">
  <li>Our team will review your submission within 24-48 hours</li>
  <li>We may reach out for additional information if needed</li>
  <li>You'll receive an email when your case status is updated</li>
</ol>
<p style="color: #9ca3af;">If you have urgent concerns, please reply to this email or contact us directly.</p>
{{end}}`

const confirmationText = `Thank you, {{.Case.Name}}

We have received your case review request. Your submission is now under review by our team.

Your Case Reference: {{.Reference}}

What happens next?
1. Our team will review your submission within 24-48 hours
2. We may reach out for additional information if needed
3. You'll receive an email when your case status is updated

If you have urgent concerns, please reply to this email or contact us directly.
`

const statusHTML = `{{define "content"}}
<h2>Hello, {{.Case.Name}}</h2>
<p style="color: #9ca3af;">Your case status has been updated.</p>
<p style="text-align: center;"><span style="color: #6b7280;">{{.Previous}}</span> &rarr; <strong style="color: #d4af37;">{{.Current}}</strong></p>
<p style="line-height: 1.8;">{{.Message}}</p>
<p style="color: #9ca3af; font-size: 14px;">Case Reference:</p>
<p style="color: #d4af37; font-family: monospace;">{{.Reference}}</p>
<p style="color: #9ca3af;">If you have any questions about your case, please don't hesitate to reach out.</p>
{{end}}`

const statusText = `Hello, {{.Case.Name}}

Your case status has been updated.

Status Change: {{.Previous}} -> {{.Current}}

{{.Message}}

Case Reference: {{.Reference}}

If you have any questions about your case, please don't hesitate to reach out.
`

const testHTML = `{{define "content"}}
<p>This is a test message from the Civil CI intake portal.</p>
<p style="color: #9ca3af;">Notifications are configured and deliverable to {{.Recipient}}.</p>
{{end}}`

const testText = `This is a test message from the Civil CI intake portal.

Notifications are configured and deliverable to {{.Recipient}}.
`

// message pairs the html and plain text rendering of one email kind.
type message struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func newMessage(name, html, text string) message {
	layout := htmltemplate.Must(htmltemplate.New(name).Parse(layoutHTML))
	return message{
		html: htmltemplate.Must(layout.Parse(html)),
		text: texttemplate.Must(texttemplate.New(name).Parse(text)),
	}
}

var (
	newCaseMessage      = newMessage("new-case", newCaseHTML, newCaseText)
	confirmationMessage = newMessage("confirmation", confirmationHTML, confirmationText)
	statusMessage       = newMessage("status", statusHTML, statusText)
	testMessage         = newMessage("test", testHTML, testText)
)

func (m message) render(data any) (html, text string, err error) {
	var htmlBuf, textBuf bytes.Buffer
	if err = m.html.ExecuteTemplate(&htmlBuf, "layout", data); err != nil {
		return "", "", err
	}
	if err = m.text.Execute(&textBuf, data); err != nil {
		return "", "", err
	}
	return htmlBuf.String(), strings.TrimSpace(textBuf.String()) + "\n", nil
}
