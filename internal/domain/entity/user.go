package entity

// UserMode режим, в котором бот интерпретирует сообщения пользователя
type UserMode string

const (
	ModeAuto        UserMode = "auto"        // Автоматическое определение запроса
	ModeThroughHole UserMode = "throughhole" // Цилиндрические резисторы (цветные полосы)
	ModeSMD         UserMode = "smd"         // SMD-коды
	ModePhoto       UserMode = "photo"       // Ожидание фото
)

// Valid сообщает, известен ли режим
func (m UserMode) Valid() bool {
	switch m {
	case ModeAuto, ModeThroughHole, ModeSMD, ModePhoto:
		return true
	}
	return false
}

// Language язык ответов
type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
)

// ParseLanguage возвращает язык по коду, по умолчанию русский
func ParseLanguage(code string) Language {
	if code == string(LangEN) {
		return LangEN
	}
	return LangRU
}

// Units возвращает названия единиц для языка
func (l Language) Units() Units {
	if l == LangEN {
		return UnitsEN
	}
	return UnitsRU
}

// User сессия пользователя бота
type User struct {
	ID       int64    `json:"id"`       // Telegram User ID
	ChatID   int64    `json:"chat_id"`  // Telegram Chat ID
	Mode     UserMode `json:"mode"`     // Текущий режим
	Language Language `json:"language"` // Язык ответов
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:       userID,
		ChatID:   chatID,
		Mode:     ModeAuto,
		Language: LangRU,
	}
}

// SetMode обновляет режим пользователя
func (u *User) SetMode(mode UserMode) {
	u.Mode = mode
}

// SetLanguage обновляет язык пользователя
func (u *User) SetLanguage(lang Language) {
	u.Language = lang
}
