package email

func (c *Client) SendWelcomeEmail(to, firstName string) error {
	return c.SendEmail(
		to,
		"Welcome to Six-Figure AI Engineering!",
		TemplateWelcome,
		map[string]string{"UserFirstName": firstName},
	)
}
