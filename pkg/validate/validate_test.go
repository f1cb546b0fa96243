package validate

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Nombre   string `json:"nombre"   binding:"required"`
	Creditos *int   `json:"creditos" binding:"required,gte=0"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var s sample
	return c.ShouldBindJSON(&s)
}

func TestMessage_RequiredUsesJSONName(t *testing.T) {
	err := bind(t, `{"creditos": 5}`)
	require.Error(t, err)
	assert.Contains(t, Message(err), "nombre")
}

func TestMessage_UnknownField(t *testing.T) {
	err := bind(t, `{"nombre": "x", "creditos": 1, "extra": true}`)
	require.Error(t, err)
	assert.Equal(t, `El campo "extra" no está permitido.`, Message(err))
}

func TestMessage_WrongType(t *testing.T) {
	err := bind(t, `{"nombre": "x", "creditos": "muchos"}`)
	require.Error(t, err)
	assert.Equal(t, "El campo creditos tiene un tipo inválido.", Message(err))
}

func TestMessage_EmptyBody(t *testing.T) {
	err := bind(t, ``)
	require.Error(t, err)
	assert.Equal(t, "El cuerpo de la solicitud está vacío.", Message(err))
}

func TestMessage_Valid(t *testing.T) {
	assert.NoError(t, bind(t, `{"nombre": "x", "creditos": 0}`))
}
