package db_models

// Profile is a local viewing profile. No credentials; selecting a profile
// issues a token that scopes bookmarks and quiz results to it.
type Profile struct {
	BaseModel
	Name string `gorm:"not null"`

	Bookmarks   []Bookmark   `gorm:"foreignKey:ProfileID"`
	QuizResults []QuizResult `gorm:"foreignKey:ProfileID"`
}
