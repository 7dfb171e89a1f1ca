package ai

// Request is everything sent to the backend for one assessment. All three
// fields come from server configuration and the rendered template, never from
// caller-supplied generation parameters.
type Request struct {
	Model             string
	SystemInstruction string
	Prompt            string
}
