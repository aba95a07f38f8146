package model

// RecetaModel mirrors the 'recetas' table. AutorID references usuarios.id,
// but no foreign key constraint is created for it: the store accepts author
// references that do not exist, matching the documented write semantics.
type RecetaModel struct {
	ID               uint   `gorm:"primaryKey"`
	Titulo           string `gorm:"type:varchar(255);index"`
	Descripcion      string `gorm:"type:text"`
	Ingredientes     string `gorm:"type:text"`
	PasosPreparacion string `gorm:"type:text"`
	AutorID          uint   `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RecetaModel) TableName() string {
	return "recetas"
}
