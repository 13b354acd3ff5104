package user

// User - профиль пользователя из внешнего API
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Tokens - пара JWT-токенов, которую выдает внешнее API.
// Мы их не подписываем и не проверяем, только храним и передаем.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// SignInForm - тело запроса на логин
type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpForm - тело запроса на регистрацию
type SignUpForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UpdateProfileForm - обновление профиля.
// Указатели, чтобы отличать "поле не прислали" от пустой строки.
type UpdateProfileForm struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
