package repository

const (
	jobColumns = `job_id, user_id, title, description, style, duration, quality, engine,
	 status, progress, logs, error, analysis, scenes, program, result_path, created_at, updated_at`

	createJobQuery = `INSERT INTO animation_jobs (job_id, user_id, title, description, style, duration,
	  quality, engine, status, progress, logs, created_at, updated_at)
	 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	 RETURNING ` + jobColumns

	getJobByIDQuery = `SELECT ` + jobColumns + `
	 FROM animation_jobs
	 WHERE job_id = $1`

	saveJobQuery = `UPDATE animation_jobs
	 SET status = $2,
	     progress = $3,
	     logs = $4,
	     error = $5,
	     analysis = $6,
	     scenes = $7,
	     program = $8,
	     result_path = $9,
	     updated_at = now()
	 WHERE job_id = $1`

	getTotalJobsByUserIDQuery = `SELECT COUNT(job_id) FROM animation_jobs WHERE user_id = $1`

	getJobsByUserIDQuery = `SELECT ` + jobColumns + `
	 FROM animation_jobs
	 WHERE user_id = $1
	 ORDER BY created_at DESC
	 OFFSET $2 LIMIT $3`

	getQueuedJobIDsQuery = `SELECT job_id
	 FROM animation_jobs
	 WHERE status = 'queued'
	 ORDER BY created_at ASC
	 LIMIT $1`
)
