package mailer

import (
	"fmt"
	"time"
)

// emailTemplate holds a rendered message body pair
type emailTemplate struct {
	Subject string
	HTML    string
	Text    string
}

func welcomeTemplate(source string) emailTemplate {
	_ = source // carried for parity with the signup record, not interpolated

	subject := "Welcome to prznt - AI-Powered Gift Discovery! 🎁"

	html := `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Welcome to prznt</title>
  <style>
    body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #3b82f6, #8b5cf6); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f8fafc; padding: 30px; border-radius: 0 0 10px 10px; }
    .logo { font-size: 32px; font-weight: bold; margin-bottom: 10px; }
    .cta-button { background: linear-gradient(135deg, #3b82f6, #8b5cf6); color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; display: inline-block; margin: 20px 0; }
    .footer { text-align: center; margin-top: 30px; font-size: 14px; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">prznt</div>
      <div>AI-Powered Gift Discovery</div>
    </div>
    <div class="content">
      <h2>Welcome to the Future of Gift Discovery! 🚀</h2>
      <p>Thank you for joining our exclusive beta programme! You're now part of a select group who will be among the first to experience how AI can revolutionise gift-giving.</p>
      <h3>What's Coming Your Way:</h3>
      <p>🧠 <strong>AI-Powered Learning:</strong> Our neural network learns your unique preferences</p>
      <p>✨ <strong>Smart Recommendations:</strong> Personalised gift suggestions that actually understand you</p>
      <p>👥 <strong>Social Integration:</strong> Connect with friends and family for better gift ideas</p>
      <p>⭐ <strong>Curated Quality:</strong> Only the best products make it to your recommendations</p>
      <p>We're working hard to perfect the experience and will notify you the moment we're ready to launch.</p>
      <a href="https://prznt.app/landingpage" class="cta-button">Explore Alpha Version</a>
      <p>Have questions or feedback? Simply reply to this email - we read and respond to every message!</p>
      <p>Excited to have you on board,<br>The prznt Team</p>
    </div>
    <div class="footer">
      <p>You're receiving this email because you signed up for prznt beta access.</p>
      <p>If you no longer wish to receive these emails, you can <a href="mailto:contact@prznt.app?subject=Unsubscribe">unsubscribe here</a>.</p>
    </div>
  </div>
</body>
</html>`

	text := `Welcome to prznt - AI-Powered Gift Discovery!

Thank you for joining our exclusive beta programme! You're now part of a select group who will be among the first to experience how AI can revolutionise gift-giving.

What's Coming Your Way:
🧠 AI-Powered Learning: Our neural network learns your unique preferences
✨ Smart Recommendations: Personalised gift suggestions that actually understand you
👥 Social Integration: Connect with friends and family for better gift ideas
⭐ Curated Quality: Only the best products make it to your recommendations

We're working hard to perfect the experience and will notify you the moment we're ready to launch. In the meantime, you can explore our alpha version at: https://prznt.app/landingpage

Have questions or feedback? Simply reply to this email - we read and respond to every message!

Excited to have you on board,
The prznt Team

---
You're receiving this email because you signed up for prznt beta access.
If you no longer wish to receive these emails, you can unsubscribe by emailing contact@prznt.app`

	return emailTemplate{Subject: subject, HTML: html, Text: text}
}

func adminNotificationTemplate(subscriberEmail, source, signupID string, at time.Time) emailTemplate {
	subject := fmt.Sprintf("New Newsletter Signup: %s", subscriberEmail)
	timestamp := at.Format("2006-01-02 15:04:05 UTC")

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Newsletter Signup</title>
  <style>
    body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1f2937; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 20px; border-radius: 0 0 8px 8px; }
    .info-box { background: white; padding: 15px; border-radius: 6px; margin: 15px 0; border-left: 4px solid #3b82f6; }
    .label { font-weight: bold; color: #374151; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>🎉 New Newsletter Signup - prznt</h2>
    </div>
    <div class="content">
      <p>A new user has signed up for the prznt newsletter!</p>
      <div class="info-box">
        <div><span class="label">Email:</span> %s</div>
        <div><span class="label">Source:</span> %s</div>
        <div><span class="label">Signup ID:</span> %s</div>
        <div><span class="label">Timestamp:</span> %s</div>
      </div>
      <p>The subscriber has been automatically sent a welcome email and added to the newsletter database.</p>
    </div>
  </div>
</body>
</html>`, subscriberEmail, source, signupID, timestamp)

	text := fmt.Sprintf(`New Newsletter Signup - prznt

A new user has signed up for the prznt newsletter!

Details:
Email: %s
Source: %s
Signup ID: %s
Timestamp: %s

The subscriber has been automatically sent a welcome email and added to the newsletter database.`,
		subscriberEmail, source, signupID, timestamp)

	return emailTemplate{Subject: subject, HTML: html, Text: text}
}
