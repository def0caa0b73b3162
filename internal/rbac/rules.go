package rbac

// Default policy for the quiz pipeline: students take quizzes, instructors
// run the extract -> review -> generate flow and see answer keys.
var RolePermissions = map[string][]string{
	"student": {
		"quiz:view",
		"submission:create",
		"submission:view-own",
		"adaptive:next",
	},
	"instructor": {
		"quiz:create",
		"quiz:generate",
		"quiz:view",
		"quiz:view-full",
		"concepts:extract",
		"review:manage",
		"difficulty:classify",
		"submission:view-all",
	},
	"admin": {
		"*", // everything
	},
}
