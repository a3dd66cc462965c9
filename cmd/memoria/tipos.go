package main

import (
	"sync"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// Palabra es la unidad de almacenamiento de la memoria emulada,
// una palabra de máquina de 32 bits con signo.
type Palabra int32

// TamanioPalabra es el tamaño en bytes de una palabra dentro del archivo de swap.
const TamanioPalabra = 4

// Valores centinela para las tablas
const (
	MarcoInvalido  = -1
	PaginaInvalida = -1
)

// Flags de una entrada de la tabla de páginas
const (
	FlagReferencia uint8 = 1 << 0 // la página fue accedida
	FlagModificada uint8 = 1 << 1 // la página fue escrita desde que reside en memoria
)

// EdadInicial es la edad con la que una página entra a memoria bajo AGING
const EdadInicial uint8 = 0x80

// Algoritmos de reemplazo disponibles
const (
	AlgoritmoFIFO  = "FIFO"
	AlgoritmoClock = "CLOCK"
	AlgoritmoAging = "AGING"
)

// EntradaPagina es una entrada de la tabla de páginas
type EntradaPagina struct {
	Marco    int   // marco asignado o MarcoInvalido si la página no reside en memoria
	Flags    uint8 // FlagReferencia y FlagModificada
	Edad     uint8 // contador de envejecimiento para AGING
	Contador int   // contador por página, reservado
}

// BloqueAdmin agrupa el estado administrativo del administrador de memoria
type BloqueAdmin struct {
	TamVirtual       int // tamaño del espacio virtual en palabras
	CantPaginas      int
	CantMarcos       int
	TamPagina        int // en palabras
	PaginaSolicitada int // página pendiente de carga, PaginaInvalida si no hay fallo en curso
	PIDManager       int
	Algoritmo        string
	Fallos           int
	Accesos          int
	Desalojos        int
	Puntero          int // último marco considerado por FIFO/CLOCK
}

// Notificacion es el tipo de los avisos que atiende el bucle principal
type Notificacion int

const (
	NotificacionFallo Notificacion = iota
	NotificacionVolcado
	NotificacionFin
)

// Variables globales
var tablaPaginas []EntradaPagina // una entrada por página virtual
var tablaMarcos []int            // página alojada en cada marco, PaginaInvalida si está libre
var memoriaFisica []Palabra      // datos de los marcos
var admin BloqueAdmin

var notificaciones chan Notificacion // avisos hacia el bucle principal
var paginaLista *utils.Semaforo      // despierta al acceso bloqueado por un fallo
var accesoMutex sync.Mutex           // serializa los accesos del cliente
