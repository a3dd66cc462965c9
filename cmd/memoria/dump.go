package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// volcarTablaPaginas escribe el estado completo de la tabla de páginas en un
// archivo con timestamp bajo DUMP_PATH. Corre en el bucle principal.
func volcarTablaPaginas() {
	timestamp := time.Now().Format("20060102-150405")
	nombreArchivo := fmt.Sprintf("tabla-%s.dmp", timestamp)
	rutaCompleta := filepath.Join(config.DumpPath, nombreArchivo)

	if err := os.MkdirAll(config.DumpPath, 0755); err != nil {
		utils.ErrorLog.Error("Error creando directorio de dumps", "directorio", config.DumpPath, "error", err)
		return
	}

	if err := os.WriteFile(rutaCompleta, []byte(renderizarTablaPaginas()), 0644); err != nil {
		utils.ErrorLog.Error("Error escribiendo dump", "archivo", rutaCompleta, "error", err)
		return
	}

	utils.InfoLog.Info(fmt.Sprintf("## Volcado de tabla de páginas - Archivo: %s", rutaCompleta))
}

// renderizarTablaPaginas arma la vista legible de la tabla de páginas y del
// bloque administrativo, una línea por página.
func renderizarTablaPaginas() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Administrador de memoria - PID %d - Algoritmo %s\n",
		admin.PIDManager, admin.Algoritmo))
	sb.WriteString(fmt.Sprintf("Fallos %d | Accesos %d | Desalojos %d | Puntero %d\n",
		admin.Fallos, admin.Accesos, admin.Desalojos, admin.Puntero))
	sb.WriteString(fmt.Sprintf("%-8s %-9s %-6s %-6s %-4s %-4s %-9s\n",
		"Página", "Presente", "Marco", "Edad", "Ref", "Mod", "Contador"))

	for pagina := range tablaPaginas {
		entrada := &tablaPaginas[pagina]
		sb.WriteString(fmt.Sprintf("%-8d %-9v %-6d 0x%02X   %-4d %-4d %-9d\n",
			pagina,
			entrada.Marco != MarcoInvalido,
			entrada.Marco,
			entrada.Edad,
			bitActivo(entrada.Flags, FlagReferencia),
			bitActivo(entrada.Flags, FlagModificada),
			entrada.Contador))
	}

	return sb.String()
}

func bitActivo(flags, bit uint8) int {
	if flags&bit != 0 {
		return 1
	}
	return 0
}
