package entity

// Item es el contrato mínimo que debe cumplir cualquier artículo almacenable en un
// repositorio de categoría: identidad, nombre visible y cantidad.
//
// Las variantes son tipos valor. WithQuantity devuelve una copia con la nueva cantidad;
// sólo el repositorio la usa sobre los valores que guarda, así ningún llamador puede
// mutar el estado almacenado por fuera de UpdateQuantity.
//
// Validate aplica las mismas reglas que el constructor de la variante; sirve para
// revisar valores que no pasaron por él (p. ej. los leídos de un snapshot).
type Item[T any] interface {
	GetID() int
	GetName() string
	GetQuantity() int
	WithQuantity(q int) T
	Validate() error
}
