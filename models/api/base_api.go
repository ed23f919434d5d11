package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Fields  []string    `json:"fields,omitempty"`  //поля запроса, к которым относится ошибка
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

func NewError(message string, fields ...string) Response {
	return Response{
		Status:  "fail",
		Message: message,
		Fields:  fields,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}
