package main

var (
	ProjectsIntro = `A showcase of my work across branding, UX/UI design, and full-stack development.`
	ProjectsEmpty = `No projects found in this category.`

	BlogIntro = `Sharing my knowledge and experiences in design, development, and digital strategy.`
	BlogEmpty = `No articles found matching your search criteria.`

	SkillsIntro = `A comprehensive toolkit that enables me to deliver end-to-end digital solutions.`

	ContactIntro = `Have a project in mind or want to discuss a potential collaboration?
	I'm always open to new opportunities and challenges.`

	ContactSuccessTitle = `Message sent!`
	ContactSuccess      = `Thank you for reaching out. I'll get back to you soon.`
	ContactInvalid      = `Please fix the highlighted fields and try again.`
	ContactFailed       = `Sorry, there was an error sending your message. Please try again later.`

	PostNotFound = `That article does not exist or has been moved.`
	PageNotFound = `The page you are looking for does not exist.`
)
