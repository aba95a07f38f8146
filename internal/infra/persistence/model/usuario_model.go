// Package model holds the GORM persistence models mirroring the database tables.
package model

// UsuarioModel mirrors the 'usuarios' table. The integer primary key is
// assigned by the store on insert.
type UsuarioModel struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Phone    int64
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`

	Recetas []RecetaModel `gorm:"foreignKey:AutorID"`
}

// TableName explicitly sets the table name for GORM.
func (UsuarioModel) TableName() string {
	return "usuarios"
}
