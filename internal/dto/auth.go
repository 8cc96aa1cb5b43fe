package dto

type TelegramAuthRequestDTO struct {
	InitData string `json:"init_data"`
}

type TelegramAuthResponseDTO struct {
	Token string `json:"token"`
}
