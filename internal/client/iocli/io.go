package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод команд клиента
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput читает одну строку без завершающих пробелов
	ReadInput(prompt string) (string, error)
	// ReadMultiline читает строки до одиночной точки или EOF
	ReadMultiline(prompt string) (string, error)
	Write(p []byte) (n int, err error)
	IsTerminal() bool
	// Width ширина терминала, 0 если вывод не в терминал
	Width() int
}
