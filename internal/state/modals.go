package state

// ConfirmRequest asks a yes/no question. OnConfirm runs only on yes.
type ConfirmRequest struct {
	Message   string
	OnConfirm func()
}

// InputRequest asks for one line of text. OnSubmit runs only on OK.
type InputRequest struct {
	Header   string
	Default  string
	OnSubmit func(text string)
	Validate func(text string) error
}

// AddConsoleRequest asks for the four bytes of an IPv4 address.
type AddConsoleRequest struct {
	Default  [4]int
	OnSubmit func(bytes [4]int)
}

// Modals collects modal requests raised while handling events. The frame
// loop takes each one once and presents it.
type Modals struct {
	confirm    *ConfirmRequest
	input      *InputRequest
	addConsole *AddConsoleRequest

	errorMessage   string
	hasError       bool
	successMessage string
	hasSuccess     bool
}

func NewModals() *Modals {
	return &Modals{}
}

// Confirm replaces any pending confirmation.
func (m *Modals) Confirm(message string, onConfirm func()) {
	m.confirm = &ConfirmRequest{Message: message, OnConfirm: onConfirm}
}

// Input replaces any pending text input.
func (m *Modals) Input(req InputRequest) {
	m.input = &req
}

// AddConsole replaces any pending address input.
func (m *Modals) AddConsole(req AddConsoleRequest) {
	m.addConsole = &req
}

// Error records the message and raises the error flag.
func (m *Modals) Error(message string) {
	m.errorMessage = message
	m.hasError = true
}

// Success raises the success flag.
func (m *Modals) Success(message string) {
	m.successMessage = message
	m.hasSuccess = true
}

// HasError reports whether an error is waiting to be shown.
func (m *Modals) HasError() bool { return m.hasError }

// ErrorMessage returns the last recorded error, shown or not.
func (m *Modals) ErrorMessage() string { return m.errorMessage }

func (m *Modals) TakeConfirm() (ConfirmRequest, bool) {
	if m.confirm == nil {
		return ConfirmRequest{}, false
	}
	req := *m.confirm
	m.confirm = nil
	return req, true
}

func (m *Modals) TakeInput() (InputRequest, bool) {
	if m.input == nil {
		return InputRequest{}, false
	}
	req := *m.input
	m.input = nil
	return req, true
}

func (m *Modals) TakeAddConsole() (AddConsoleRequest, bool) {
	if m.addConsole == nil {
		return AddConsoleRequest{}, false
	}
	req := *m.addConsole
	m.addConsole = nil
	return req, true
}

// TakeError clears the error flag and returns the message.
func (m *Modals) TakeError() (string, bool) {
	if !m.hasError {
		return "", false
	}
	m.hasError = false
	return m.errorMessage, true
}

func (m *Modals) TakeSuccess() (string, bool) {
	if !m.hasSuccess {
		return "", false
	}
	m.hasSuccess = false
	msg := m.successMessage
	m.successMessage = ""
	return msg, true
}

// Pending reports whether any request is waiting.
func (m *Modals) Pending() bool {
	return m.confirm != nil || m.input != nil || m.addConsole != nil || m.hasError || m.hasSuccess
}
