package response

const (
	ResultOK    = "OK"
	ResultError = "Error"
)

type ListEnvelope struct {
	Results interface{} `json:"results"`
	Total   int64       `json:"total"`
}

type ItemEnvelope struct {
	Result interface{} `json:"result"`
}

type OKEnvelope struct {
	Result string `json:"result"`
	ID     uint   `json:"id,omitempty"`
}

type ErrorEnvelope struct {
	Result    string `json:"result"`
	ErrorKind string `json:"errorKind"`
	ErrorMsg  string `json:"errorMsg"`
}

func List(results interface{}, total int64) ListEnvelope {
	return ListEnvelope{Results: results, Total: total}
}

func Item(result interface{}) ItemEnvelope {
	return ItemEnvelope{Result: result}
}

func OK(id uint) OKEnvelope {
	return OKEnvelope{Result: ResultOK, ID: id}
}

func Error(kind, message string) ErrorEnvelope {
	return ErrorEnvelope{Result: ResultError, ErrorKind: kind, ErrorMsg: message}
}
