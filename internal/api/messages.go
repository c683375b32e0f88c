package telegram

import "resistor-bot/internal/domain/entity"

// texts набор ответов бота на одном языке
type texts struct {
	Start           string
	Help            string
	ModeAuto        string
	ModeThroughHole string
	ModeSMD         string
	ModePhoto       string
	LangChanged     string
	UnknownCommand  string
	Processing      string
	PhotoTooLarge   string
	PhotoError      string
	PhotoBadFormat  string
	PhotoNotFound   string
	PhotoBands      string
	InternalError   string
	Forbidden       string

	Value      string
	Tolerance  string
	Marking    string
	Code       string
	FourBand   string
	FiveBand   string
	SmdCodes   string
	NoMarking  string
	NoSmdCodes string
	ByBands    string
	ByText     string

	ErrUnknownColor     string
	ErrColorPosition    string
	ErrBandCount        string
	ErrNotRepresentable string
	ErrSmdCode          string
	ErrConversion       string

	Colors map[entity.Color]string
	Units  entity.Units

	BtnAuto        string
	BtnThroughHole string
	BtnSMD         string
	BtnPhoto       string
	BtnLang        string
}

var textsRU = texts{
	Start: `👋 Привет! Я помогаю определить номинал резистора.

🎨 Напишите цвета полос: *красный красный коричневый золотой*
🔢 Или SMD-код: *472*, *01C*, *4R7*
💡 Или номинал: *4.7к*, *220 Ом* — подберу маркировку
📸 Или пришлите фото резистора

📋 Команды:
/auto — автоматический режим
/throughhole — выводные резисторы (цвета)
/smd — SMD-коды
/photo — распознавание по фото
/lang — сменить язык
/help — справка`,

	Help: `ℹ️ Как пользоваться ботом:

1️⃣ Цвета перечисляйте слева направо через пробел, запятую или дефис. Поддерживаются 3–6 полос.
2️⃣ SMD-коды: три цифры (E24), две цифры и буква (E96), коды с R вместо запятой.
3️⃣ Номинал можно писать с приставками к/k и М/M: *1.5к*, *2.2М*, *470 Ом*.
4️⃣ Фото: резистор крупно, на светлом однотонном фоне, полосы слева направо.

📋 Режимы:
/auto — бот сам определяет тип запроса
/throughhole — только цветовая маркировка
/smd — только SMD-коды
/photo — ожидание фото`,

	ModeAuto:        "🤖 Автоматический режим. Пишите цвета, SMD-код или номинал.",
	ModeThroughHole: "🎨 Режим выводных резисторов. Пишите цвета полос или номинал.",
	ModeSMD:         "🔢 Режим SMD. Пишите код с корпуса или номинал.",
	ModePhoto:       "📸 Пришлите фото резистора.",
	LangChanged:     "🇷🇺 Язык: русский",
	UnknownCommand:  "❓ Неизвестная команда. Используйте /help для справки.",
	Processing:      "⏳ Обрабатываю изображение...",
	PhotoTooLarge:   "⚠️ Фото слишком большое.",
	PhotoError:      "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото.",
	PhotoBadFormat:  "⚠️ Формат изображения не поддерживается.",
	PhotoNotFound:   "🔍 Не удалось распознать резистор на фото. Сфотографируйте крупнее на однотонном фоне.",
	PhotoBands:      "🔍 Найдено полос: %d, но расшифровать их не удалось. Сфотографируйте крупнее на однотонном фоне.",
	InternalError:   "⚠️ Что-то пошло не так. Попробуйте ещё раз.",
	Forbidden:       "⛔ Команда недоступна.",

	Value:      "💡 Номинал",
	Tolerance:  "📏 Допуск",
	Marking:    "🎨 Маркировка",
	Code:       "🔢 Код",
	FourBand:   "4 полосы",
	FiveBand:   "5 полос",
	SmdCodes:   "SMD",
	NoMarking:  "нет",
	NoSmdCodes: "нет подходящего кода",
	ByBands:    "📸 Распознано по цветам",
	ByText:     "📸 Распознан текст",

	ErrUnknownColor:     "❓ Неизвестный цвет. Допустимые: черный, коричневый, красный, оранжевый, желтый, зеленый, синий, фиолетовый, серый, белый, золотой, серебряный.",
	ErrColorPosition:    "⚠️ Золотой и серебряный не могут быть значащей цифрой.",
	ErrBandCount:        "⚠️ Нужно от 3 до 6 полос.",
	ErrNotRepresentable: "⚠️ Такой номинал нельзя закодировать.",
	ErrSmdCode:          "⚠️ Неверный SMD-код.",
	ErrConversion:       "❓ Не понял запрос. Напишите цвета, SMD-код или номинал, например *4.7к*.",

	Colors: map[entity.Color]string{
		entity.Black:  "черный",
		entity.Brown:  "коричневый",
		entity.Red:    "красный",
		entity.Orange: "оранжевый",
		entity.Yellow: "желтый",
		entity.Green:  "зеленый",
		entity.Blue:   "синий",
		entity.Violet: "фиолетовый",
		entity.Gray:   "серый",
		entity.White:  "белый",
		entity.Gold:   "золотой",
		entity.Silver: "серебряный",
	},
	Units: entity.UnitsRU,

	BtnAuto:        "🤖 Авто",
	BtnThroughHole: "🎨 Цвета",
	BtnSMD:         "🔢 SMD",
	BtnPhoto:       "📸 Фото",
	BtnLang:        "🇬🇧 English",
}

var textsEN = texts{
	Start: `👋 Hi! I help to find out a resistor value.

🎨 Send band colors: *red red brown gold*
🔢 Or an SMD code: *472*, *01C*, *4R7*
💡 Or a value: *4.7k*, *220 ohm*, and I will suggest the marking
📸 Or send a photo of the resistor

📋 Commands:
/auto — automatic mode
/throughhole — through-hole resistors (colors)
/smd — SMD codes
/photo — photo recognition
/lang — change language
/help — help`,

	Help: `ℹ️ How to use the bot:

1️⃣ List colors left to right separated by spaces, commas or dashes. 3 to 6 bands are supported.
2️⃣ SMD codes: three digits (E24), two digits and a letter (E96), codes with R as the decimal point.
3️⃣ Values accept k and M prefixes: *1.5k*, *2.2M*, *470 ohm*.
4️⃣ Photo: the resistor close up on a plain light background, bands left to right.

📋 Modes:
/auto — the bot detects the request type
/throughhole — color marking only
/smd — SMD codes only
/photo — waiting for a photo`,

	ModeAuto:        "🤖 Automatic mode. Send colors, an SMD code or a value.",
	ModeThroughHole: "🎨 Through-hole mode. Send band colors or a value.",
	ModeSMD:         "🔢 SMD mode. Send the code from the case or a value.",
	ModePhoto:       "📸 Send a photo of the resistor.",
	LangChanged:     "🇬🇧 Language: English",
	UnknownCommand:  "❓ Unknown command. Use /help.",
	Processing:      "⏳ Processing the image...",
	PhotoTooLarge:   "⚠️ The photo is too large.",
	PhotoError:      "⚠️ Could not process the image. Try another photo.",
	PhotoBadFormat:  "⚠️ Unsupported image format.",
	PhotoNotFound:   "🔍 Could not recognize a resistor. Take a closer photo on a plain background.",
	PhotoBands:      "🔍 Found %d bands but could not decode them. Take a closer photo on a plain background.",
	InternalError:   "⚠️ Something went wrong. Please try again.",
	Forbidden:       "⛔ Command is not available.",

	Value:      "💡 Value",
	Tolerance:  "📏 Tolerance",
	Marking:    "🎨 Marking",
	Code:       "🔢 Code",
	FourBand:   "4 bands",
	FiveBand:   "5 bands",
	SmdCodes:   "SMD",
	NoMarking:  "none",
	NoSmdCodes: "no matching code",
	ByBands:    "📸 Recognized by colors",
	ByText:     "📸 Recognized text",

	ErrUnknownColor:     "❓ Unknown color. Allowed: black, brown, red, orange, yellow, green, blue, violet, gray, white, gold, silver.",
	ErrColorPosition:    "⚠️ Gold and silver cannot be a significant digit.",
	ErrBandCount:        "⚠️ 3 to 6 bands are required.",
	ErrNotRepresentable: "⚠️ This value cannot be encoded.",
	ErrSmdCode:          "⚠️ Invalid SMD code.",
	ErrConversion:       "❓ Request not understood. Send colors, an SMD code or a value like *4.7k*.",

	Colors: map[entity.Color]string{
		entity.Black:  "black",
		entity.Brown:  "brown",
		entity.Red:    "red",
		entity.Orange: "orange",
		entity.Yellow: "yellow",
		entity.Green:  "green",
		entity.Blue:   "blue",
		entity.Violet: "violet",
		entity.Gray:   "gray",
		entity.White:  "white",
		entity.Gold:   "gold",
		entity.Silver: "silver",
	},
	Units: entity.UnitsEN,

	BtnAuto:        "🤖 Auto",
	BtnThroughHole: "🎨 Colors",
	BtnSMD:         "🔢 SMD",
	BtnPhoto:       "📸 Photo",
	BtnLang:        "🇷🇺 Русский",
}

func textsFor(lang entity.Language) *texts {
	if lang == entity.LangEN {
		return &textsEN
	}
	return &textsRU
}
