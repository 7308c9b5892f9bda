package pdf_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/infrastructure/pdf"
)

func TestGenerateFichaPDF(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	motivo := "Sector fuera del ámbito de los ciclos ofertados."
	s := &entity.EmpresaSolicitud{
		ID:              "b3f1c0de-0000-4000-8000-000000000001",
		NombreEmpresa:   "Acme Robótica",
		Sector:          "Industria",
		Ciudad:          "Valencia",
		Descripcion:     strings.Repeat("Automatización industrial. ", 20),
		ContactoNombre:  "Jane Doe",
		ContactoEmail:   "jane@acme.test",
		Estado:          entity.EstadoRechazada,
		RejectionReason: &motivo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	mensajes := []*entity.EmpresaMensaje{
		{ID: "m1", SolicitudID: s.ID, Autor: entity.AutorEmpresa, Contenido: "¿Necesitáis más datos?", CreatedAt: now},
		{ID: "m2", SolicitudID: s.ID, Autor: entity.AutorCentro, Contenido: "No, gracias.", CreatedAt: now.Add(time.Minute)},
	}

	gen := pdf.NewMarotoPDFGenerator("Oficina de Prácticas")
	out, err := gen.GenerateFichaPDF(context.Background(), s, "http://portal.test/portal/solicitudes/abc", mensajes)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
