package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wanda/backoffice_admin/helpers"
	"github.com/wanda/backoffice_admin/internal/clients"
	ihelpers "github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/internal/session"
	"github.com/wanda/backoffice_admin/internal/validation"
	"github.com/wanda/backoffice_admin/models"
	rootservices "github.com/wanda/backoffice_admin/services"
)

// app es el estado compartido por todos los sub-comandos.
type app struct {
	out        io.Writer
	configPath string
	formato    string

	cfg     rootservices.Config
	storage session.Storage
	client  *clients.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "wanda-admin",
		Short:         "Administración del back-office de Wanda",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "conf/app.conf", "archivo de configuración ini")
	root.PersistentFlags().StringVarP(&a.formato, "output", "o", "yaml", "formato de salida: json|yaml")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.usuariosCmd(),
		a.anfitrionesCmd(),
		a.concursosCmd(),
		a.promocionesCmd(),
		a.novedadesCmd(),
		a.sponsorsCmd(),
		a.parametrosCmd(),
		a.preguntasCmd(),
		a.paginasCmd(),
	)
	return root
}

func (a *app) init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("leyendo .env: %w", err)
	}
	cfg, err := rootservices.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	configurarLogs(cfg)

	storage, err := session.OpenStorage(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.storage = storage
	a.client = clients.New(cfg, session.New(cfg, storage))
	logs.Debug("api=%s storage=%s", cfg.APIBaseURL, cfg.StorageDriver)
	return nil
}

func (a *app) close() error {
	if c, ok := a.storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func configurarLogs(cfg rootservices.Config) {
	logs.Reset()
	_ = logs.SetLogger(logs.AdapterConsole, `{"color":false}`)
	if cfg.IsDev() {
		logs.SetLevel(logs.LevelDebug)
		return
	}
	switch cfg.LogLevel {
	case "debug":
		logs.SetLevel(logs.LevelDebug)
	case "warn", "warning":
		logs.SetLevel(logs.LevelWarn)
	case "error":
		logs.SetLevel(logs.LevelError)
	default:
		logs.SetLevel(logs.LevelInfo)
	}
}

// imprimir escribe v en el formato pedido con -o.
func (a *app) imprimir(v any) error {
	switch strings.ToLower(a.formato) {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("formato de salida %q no soportado", a.formato)
	}
}

func (a *app) ok(mensaje string) error {
	return a.imprimir(map[string]any{"success": true, "message": mensaje})
}

// explicar traduce los errores de la fachada a algo accionable por el operador.
func explicar(err error) error {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		lineas := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			lineas = append(lineas, "  - "+fe.Mensaje)
		}
		return fmt.Errorf("formulario inválido:\n%s", strings.Join(lineas, "\n"))
	}
	if helpers.IsHTTPError(err, 401) {
		return fmt.Errorf("%w (la sesión expiró o no es válida; ejecute wanda-admin login)", err)
	}
	return err
}

// leerPayload decodifica un archivo YAML o JSON en out.
// Las fechas pueden venir como yyyy-MM-dd o timestamp, con o sin comillas.
func leerPayload(path string, out any) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("falta el archivo de datos (-f)")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if doc.Kind == 0 {
		return fmt.Errorf("%s: archivo vacío", path)
	}
	if err := normalizarFechas(&doc, camposFecha(out)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := doc.Decode(out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

var tipoTime = reflect.TypeOf(time.Time{})

// camposFecha devuelve las claves yaml de los campos time.Time del struct apuntado por out.
func camposFecha(out any) map[string]bool {
	t := reflect.TypeOf(out)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	campos := map[string]bool{}
	if t == nil || t.Kind() != reflect.Struct {
		return campos
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type != tipoTime {
			continue
		}
		nombre, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if nombre == "" {
			nombre = strings.ToLower(f.Name)
		}
		campos[nombre] = true
	}
	return campos
}

// normalizarFechas reescribe los escalares de fecha en RFC3339, que es lo que time.Time acepta al decodificar.
func normalizarFechas(n *yaml.Node, campos map[string]bool) error {
	if len(campos) == 0 {
		return nil
	}
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			clave, valor := n.Content[i], n.Content[i+1]
			if !campos[clave.Value] || valor.Kind != yaml.ScalarNode || strings.TrimSpace(valor.Value) == "" {
				continue
			}
			t, err := ihelpers.ParseFecha(valor.Value)
			if err != nil {
				return fmt.Errorf("%s: %w", clave.Value, err)
			}
			valor.Value = t.Format(time.RFC3339)
			valor.Tag = "!!str"
			valor.Style = yaml.DoubleQuotedStyle
		}
		return nil
	}
	for _, hijo := range n.Content {
		if err := normalizarFechas(hijo, campos); err != nil {
			return err
		}
	}
	return nil
}

func leerImagen(path string) (*models.Archivo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	return ihelpers.LeerArchivo(path)
}

func leerImagenes(paths []string) ([]*models.Archivo, error) {
	out := make([]*models.Archivo, 0, len(paths))
	for _, p := range paths {
		img, err := ihelpers.LeerArchivo(p)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %q", arg)
	}
	return id, nil
}
