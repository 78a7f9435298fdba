package repos

import (
	"shopadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// ListWithCounts returns every category with the number of products
// referencing it. Categories without products appear with count 0.
func (r *CategoryRepo) ListWithCounts() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
  SELECT
    c.category_id,
    c.category_name,
    COALESCE(c.img_name,'') AS img_name,
    COUNT(p.product_id)     AS product_count
  FROM categories c
  LEFT JOIN products p ON p.category_id = c.category_id
  GROUP BY c.category_id, c.category_name, c.img_name
  ORDER BY c.category_name
`)
	return out, err
}

func (r *CategoryRepo) NameExists(name string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM categories WHERE category_name = ?`, name)
	return n > 0, err
}

// NameExistsExcluding checks for a duplicate name on any row other than id,
// so a category may be updated to its own current name.
func (r *CategoryRepo) NameExistsExcluding(name string, id int64) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM categories WHERE category_name = ? AND category_id <> ?`, name, id)
	return n > 0, err
}

func (r *CategoryRepo) CountProducts(id int64) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE category_id = ?`, id)
	return n, err
}

func (r *CategoryRepo) Insert(name, imgName string) error {
	_, err := r.db.Exec(`INSERT INTO categories(category_name, img_name) VALUES(?, ?)`, name, imgName)
	return err
}

// Update overwrites name and image for id and reports rows affected;
// 0 means the id no longer exists.
func (r *CategoryRepo) Update(id int64, name, imgName string) (int64, error) {
	res, err := r.db.Exec(`
  UPDATE categories
  SET category_name = ?, img_name = ?, updated_at = CURRENT_TIMESTAMP
  WHERE category_id = ?`, name, imgName, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CategoryRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM categories WHERE category_id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
