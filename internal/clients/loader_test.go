package clients

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanda/backoffice_admin/internal/backendtest"
	"github.com/wanda/backoffice_admin/models/requestresponse"
)

func TestConcursoLoader_AgrupaCargasConcurrentes(t *testing.T) {
	c, srv := nuevoCliente(t)

	var hits int32
	llego := make(chan struct{})
	liberar := make(chan struct{})
	srv.Handle(http.MethodGet, "/concurso/admin/find-all", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			close(llego)
		}
		<-liberar
		backendtest.WriteJSON(w, http.StatusOK, requestresponse.NewSuccess("", []map[string]any{
			{"concId": 1, "concNombre": "Uno", "concIsActive": true},
			{"concId": 2, "concNombre": "Dos", "concIsActive": false},
		}))
	})

	loader := NewConcursoLoader(c.Concursos())
	const llamadores = 5
	resultados := make([]int, llamadores)
	errs := make([]error, llamadores)

	var wg sync.WaitGroup
	cargar := func(i int) {
		defer wg.Done()
		lista, err := loader.Load(context.Background(), false)
		errs[i] = err
		resultados[i] = len(lista)
	}

	wg.Add(1)
	go cargar(0)
	<-llego
	for i := 1; i < llamadores; i++ {
		wg.Add(1)
		go cargar(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(liberar)
	wg.Wait()

	for i := 0; i < llamadores; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 2, resultados[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	lista, err := loader.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, lista, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestConcursoLoader_CopiaIndependiente(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodGet, "/concurso/admin/activos", http.StatusOK, []map[string]any{
		{"concId": 1, "concNombre": "Uno", "concIsActive": true},
	})

	loader := NewConcursoLoader(c.Concursos())
	a, err := loader.Load(context.Background(), true)
	require.NoError(t, err)
	a[0].Nombre = "modificado"

	b, err := loader.Load(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "Uno", b[0].Nombre)
	assert.Equal(t, backendtest.Prefix+"/concurso/admin/activos", srv.Last(t).Path)
}
