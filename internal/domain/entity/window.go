package entity

// Window — окно переднего плана в оконной системе.
type Window struct {
	ID    int64  // идентификатор окна
	PID   int    // процесс-владелец
	Title string // заголовок окна
}
