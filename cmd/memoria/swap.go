package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// archivoSwap queda abierto durante toda la vida del administrador
var archivoSwap *os.File

// inicializarAreaSwap crea el archivo de swap con un slot fijo por página
// virtual, relleno con ceros. Una página limpia desalojada y vuelta a cargar
// lee los mismos ceros que siempre mostró.
func inicializarAreaSwap() error {
	dir := filepath.Dir(config.SwapfilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error al crear directorio para swap: %v", err)
	}

	swapFile, err := os.Create(config.SwapfilePath)
	if err != nil {
		return fmt.Errorf("error al crear archivo de swap: %v", err)
	}

	tamanio := int64(admin.CantPaginas) * int64(admin.TamPagina) * TamanioPalabra
	if err := swapFile.Truncate(tamanio); err != nil {
		swapFile.Close()
		return fmt.Errorf("error al dimensionar archivo de swap: %v", err)
	}

	archivoSwap = swapFile

	utils.InfoLog.Info("Área de swap inicializada",
		"archivo", config.SwapfilePath,
		"slots", admin.CantPaginas,
		"tamanio_bytes", tamanio)
	return nil
}

// offsetSwap calcula la posición del slot de una página dentro del archivo
func offsetSwap(pagina int) int64 {
	return int64(pagina) * int64(admin.TamPagina) * TamanioPalabra
}

// moverASwap escribe el contenido de un marco en el slot de la página
func moverASwap(pagina, marco int) error {
	if pagina < 0 || pagina >= admin.CantPaginas {
		return fmt.Errorf("página %d fuera del área de swap", pagina)
	}

	utils.AplicarRetardo("swap", config.RetardoSwap)

	base := marco * admin.TamPagina
	buffer := make([]byte, admin.TamPagina*TamanioPalabra)
	for i := 0; i < admin.TamPagina; i++ {
		binary.LittleEndian.PutUint32(buffer[i*TamanioPalabra:], uint32(memoriaFisica[base+i]))
	}

	if _, err := archivoSwap.WriteAt(buffer, offsetSwap(pagina)); err != nil {
		return fmt.Errorf("error al escribir en swap: %v", err)
	}

	utils.InfoLog.Info(fmt.Sprintf("## Página movida a swap - Página: %d - Marco: %d", pagina, marco))
	return nil
}

// traerDeSwap carga el slot de la página en el marco indicado
func traerDeSwap(pagina, marco int) error {
	if pagina < 0 || pagina >= admin.CantPaginas {
		return fmt.Errorf("página %d fuera del área de swap", pagina)
	}

	utils.AplicarRetardo("swap", config.RetardoSwap)

	buffer := make([]byte, admin.TamPagina*TamanioPalabra)
	if _, err := archivoSwap.ReadAt(buffer, offsetSwap(pagina)); err != nil {
		return fmt.Errorf("error al leer de swap: %v", err)
	}

	base := marco * admin.TamPagina
	for i := 0; i < admin.TamPagina; i++ {
		memoriaFisica[base+i] = Palabra(binary.LittleEndian.Uint32(buffer[i*TamanioPalabra:]))
	}

	utils.InfoLog.Info(fmt.Sprintf("## Página recuperada de swap - Página: %d - Marco: %d", pagina, marco))
	return nil
}

func cerrarAreaSwap() {
	if archivoSwap != nil {
		archivoSwap.Close()
		archivoSwap = nil
	}
}
