package user

const (
	SelectUsers = `
		SELECT id, full_name, email, phone, zip_code, address, number, city, state, terms_accepted, created_at, updated_at
		FROM users
		ORDER BY id
	`
	SelectUserByID = `
		SELECT id, full_name, email, phone, zip_code, address, number, city, state, terms_accepted, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	SelectEmailExists = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND id <> $2
		)
	`
	InsertUser = `
		INSERT INTO users (full_name, email, phone, zip_code, address, number, city, state, terms_accepted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING
		  id, full_name, email, phone, zip_code, address, number, city, state, terms_accepted, created_at, updated_at
	`
	UpdateUserByID = `
		UPDATE users
		SET full_name = $1,
		    email = $2,
		    phone = $3,
		    zip_code = $4,
		    address = $5,
		    number = $6,
		    city = $7,
		    state = $8,
		    terms_accepted = $9,
		    updated_at = now()
		WHERE id = $10
		RETURNING
		  id, full_name, email, phone, zip_code, address, number, city, state, terms_accepted, created_at, updated_at
	`
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING
		  id, full_name, email, phone, zip_code, address, number, city, state, terms_accepted, created_at, updated_at
	`
)
