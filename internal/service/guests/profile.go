package guests

import "github.com/m04kA/SPA-BookingService/internal/domain"

// DefaultProfile фиксированный профиль-заглушка для гостевых записей.
// Осознанный технический долг: бронирование работает без регистрации,
// поэтому на каждый проход флоу создается новый гость с этими данными.
// Когда появится идентификация клиента, сюда добавится вариант
// "существующий гость по ID" вместо создания новой записи
var DefaultProfile = domain.GuestProfile{
	FirstName:   "Dummy",
	LastName:    "User",
	Gender:      "1",
	Email:       "ak@ak.com",
	PhoneCode:   225,
	PhoneNumber: "2406886482",
	Address1:    "123 st",
	City:        "arlington",
	CountryID:   225,
	StateID:     81,
	ZipCode:     "22207",
}
