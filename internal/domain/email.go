package domain

// OutboundEmail is one message handed to the delivery port. Either
// TemplateID with Params, or Subject with HTMLBody/PlainBody, is populated.
type OutboundEmail struct {
	ToEmail string
	ToName  string

	Subject   string
	PlainBody string
	HTMLBody  string

	// Provider-side template send. When TemplateID is set the body fields
	// are ignored and Params fill the template placeholders.
	TemplateID string
	Params     map[string]string
}
