package templates

const sharedPartials = `
{{- define "body_open" -}}
<body style="font-family: 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background-color: #f5f5f5;">
{{- end -}}

{{- define "staff_footer" -}}
        <div style="text-align: center; padding: 15px; color: #666; font-size: 12px;">
            <p>This notification was sent to staff members at Sticker & Magnet Lab</p>
        </div>
{{- end -}}

{{- define "customer_footer_open" -}}
        <div style="text-align: center; padding: 25px; background: #ffffff; border: 1px solid #e0e0e0; border-top: none; border-radius: 0 0 10px 10px;">
            <p style="color: #666; font-size: 14px; margin: 0;">
                Thank you for choosing Sticker & Magnet Lab!<br>
                <a href="mailto:orders@rrinconline.com" style="color: {{.Brand.Primary}};">orders@rrinconline.com</a>
            </p>
{{- end -}}

{{- define "brand_header" -}}
        <div style="text-align: center; padding: 30px 20px; background: linear-gradient(135deg, {{.Brand.Primary}} 0%, {{.Brand.Secondary}} 100%); border-radius: 10px 10px 0 0;">
            <h1 style="color: white; margin: 0; font-size: 28px; font-weight: 600;">Sticker & Magnet Lab</h1>
{{- end -}}
`

const contactDocuments = `
{{- define "contact_staff" -}}
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
</head>
{{template "body_open"}}
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background: {{.Brand.Info}}; color: white; padding: 20px; border-radius: 5px 5px 0 0;">
            <h1 style="margin: 0; font-size: 22px;">New Contact Form Submission</h1>
            <p style="margin: 5px 0 0 0; opacity: 0.9;">Received: {{.Timestamp}}</p>
        </div>

        <div style="background: #fff; padding: 25px; border: 1px solid #ddd; border-top: none;">
            <div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px;">
                <table style="width: 100%;">
                    <tr>
                        <td><strong>Reference ID:</strong></td>
                        <td style="text-align: right; font-family: monospace;">{{.ContactID}}</td>
                    </tr>
                </table>
            </div>

            <h3 style="color: #333; border-bottom: 3px solid {{.Brand.Info}}; padding-bottom: 10px;">Contact Information</h3>
            <table style="width: 100%; margin-bottom: 25px;">
                <tr>
                    <td style="padding: 10px 0; width: 100px;"><strong>Name:</strong></td>
                    <td style="padding: 10px 0;">{{.Name}}</td>
                </tr>
                <tr>
                    <td style="padding: 10px 0;"><strong>Email:</strong></td>
                    <td style="padding: 10px 0;">
                        <a href="mailto:{{.Email}}" style="color: {{.Brand.Primary}};">{{.Email}}</a>
                    </td>
                </tr>
                <tr>
                    <td style="padding: 10px 0;"><strong>Subject:</strong></td>
                    <td style="padding: 10px 0;">{{.Subject}}</td>
                </tr>
            </table>

            <h3 style="color: #333; border-bottom: 3px solid {{.Brand.Info}}; padding-bottom: 10px;">Message</h3>
            <div style="background: #f8f9fa; padding: 20px; border-radius: 5px; white-space: pre-wrap; margin-bottom: 25px;">
{{.Message}}
            </div>

            <div style="text-align: center; margin: 25px 0;">
                <a href="mailto:{{.Email}}?subject=Re: {{.Subject}}"
                   style="display: inline-block; padding: 12px 30px; background: linear-gradient(135deg, {{.Brand.Primary}} 0%, {{.Brand.Secondary}} 100%); color: white; text-decoration: none; border-radius: 5px; font-weight: 600;">
                    Reply to {{.Name}}
                </a>
            </div>
        </div>

{{template "staff_footer"}}
    </div>
</body>
</html>
{{end -}}

{{- define "contact_reply" -}}
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Thank You for Contacting Us</title>
</head>
{{template "body_open"}}
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
{{template "brand_header" .}}
            <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0; font-size: 16px;">We've Received Your Message</p>
        </div>

        <div style="background: #ffffff; padding: 30px; border: 1px solid #e0e0e0; border-top: none;">
            <h2 style="color: #333; margin-top: 0;">Thank you for reaching out, {{.Name}}!</h2>

            <p style="font-size: 16px;">
                We've received your message and will get back to you as soon as possible,
                typically within <strong>1-2 business days</strong>.
            </p>

            <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 25px 0;">
                <h3 style="margin: 0 0 15px 0; color: #555;">Your Message Summary:</h3>
                <p style="margin: 5px 0;"><strong>Subject:</strong> {{.Subject}}</p>
                <div style="margin-top: 15px; padding: 15px; background: white; border-radius: 5px; border-left: 4px solid {{.Brand.Primary}};">
                    <p style="margin: 0; white-space: pre-wrap;">{{.Message}}</p>
                </div>
            </div>

            <p style="font-size: 16px;">
                In the meantime, feel free to browse our products or check out our FAQ section for quick answers.
            </p>

            <div style="background: #d4edda; border: 1px solid {{.Brand.Success}}; padding: 20px; border-radius: 8px; margin: 25px 0;">
                <h4 style="margin: 0 0 10px 0; color: #155724;">What happens next?</h4>
                <ul style="margin: 0; padding-left: 20px; color: #155724;">
                    <li>Our team will review your message</li>
                    <li>We'll respond via email within 1-2 business days</li>
                    <li>For urgent matters, you can also call us directly</li>
                </ul>
            </div>
        </div>

{{template "customer_footer_open" .}}
            <p style="color: #999; font-size: 12px; margin: 15px 0 0 0;">
                This is an automated response. Please do not reply directly to this email.
            </p>
        </div>
    </div>
</body>
</html>
{{end -}}
`
