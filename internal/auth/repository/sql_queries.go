package repository

const (
	createUser = `INSERT INTO users (fullname, email, password, username, role, created_at, updated_at)
						VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'user')::user_role, now(), now())
						RETURNING *`

	updateUser = `UPDATE users
						SET fullname = COALESCE(NULLIF($1, ''), fullname),
						    email = COALESCE(NULLIF($2, ''), email),
						    role = COALESCE(NULLIF($3, ''), role),
						    updated_at = now()
						WHERE user_id = $4
						RETURNING *
				`

	deleteUserQuery = `DELETE FROM users WHERE user_id = $1`

	getUserQuery = `SELECT user_id, fullname, username, email, role, created_at, updated_at
					 FROM users
					 WHERE user_id = $1`

	getUserByEmail = `SELECT user_id, fullname, username, password, email, role, created_at, updated_at
						FROM users WHERE email = $1`
)
