package templates

const orderDocuments = `
{{- define "order_staff" -}}
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Order - {{.OrderID}}</title>
</head>
{{template "body_open"}}
    <div style="max-width: 800px; margin: 0 auto; padding: 20px;">
        <div style="background: {{.Brand.Danger}}; color: white; padding: 20px; border-radius: 5px 5px 0 0; text-align: center;">
            <h1 style="margin: 0; font-size: 24px;">NEW ORDER RECEIVED</h1>
            <p style="margin: 10px 0 0 0; font-size: 18px; opacity: 0.9;">Action Required</p>
        </div>

        <div style="background: #fff; padding: 25px; border: 1px solid #ddd; border-top: none;">
            <div style="background: linear-gradient(135deg, {{.Brand.Primary}} 0%, {{.Brand.Secondary}} 100%); color: white; padding: 20px; border-radius: 8px; margin-bottom: 25px;">
                <table style="width: 100%;">
                    <tr>
                        <td>
                            <h2 style="margin: 0; font-size: 22px;">Order #{{.OrderID}}</h2>
                            <p style="margin: 5px 0 0 0; opacity: 0.9;">Received: {{.OrderDate}}</p>
                        </td>
                        <td style="text-align: right;">
                            <span style="font-size: 28px; font-weight: 700;">{{currency .Total}}</span>
                        </td>
                    </tr>
                </table>
            </div>

            <table style="width: 100%; margin-bottom: 25px;">
                <tr>
                    <td style="width: 50%; vertical-align: top; padding-right: 15px;">
                        <h3 style="color: #333; border-bottom: 3px solid {{.Brand.Info}}; padding-bottom: 10px; margin-top: 0;">Customer Information</h3>
                        <table style="width: 100%;">
                            <tr>
                                <td style="padding: 8px 0;"><strong>Name:</strong></td>
                                <td>{{.CustomerInfo.Name}}</td>
                            </tr>
                            <tr>
                                <td style="padding: 8px 0;"><strong>Email:</strong></td>
                                <td><a href="mailto:{{.CustomerInfo.Email}}" style="color: {{.Brand.Primary}};">{{.CustomerInfo.Email}}</a></td>
                            </tr>
                            <tr>
                                <td style="padding: 8px 0;"><strong>Phone:</strong></td>
                                <td>{{.Phone}}</td>
                            </tr>
                        </table>
                    </td>
                    <td style="width: 50%; vertical-align: top; padding-left: 15px;">
                        <h3 style="color: #333; border-bottom: 3px solid {{.Brand.Info}}; padding-bottom: 10px; margin-top: 0;">Shipping Address</h3>
                        <div style="background: #f8f9fa; padding: 15px; border-radius: 5px;">
                            {{.AddressHTML}}
                        </div>
                    </td>
                </tr>
            </table>

            <h3 style="color: #333; border-bottom: 3px solid {{.Brand.Info}}; padding-bottom: 10px;">Order Items</h3>
            <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
                <thead>
                    <tr style="background: #343a40; color: white;">
                        <th style="padding: 12px; text-align: center; width: 40px;">#</th>
                        <th style="padding: 12px; text-align: left;">Product</th>
                        <th style="padding: 12px; text-align: center;">Size</th>
                        <th style="padding: 12px; text-align: center;">Qty</th>
                        <th style="padding: 12px; text-align: right;">Price</th>
                        <th style="padding: 12px; text-align: center;">Artwork</th>
                    </tr>
                </thead>
                <tbody>
{{- range $i, $item := .Items}}
                    <tr>
                        <td style="padding: 12px; border: 1px solid #ddd; text-align: center;">{{inc $i}}</td>
                        <td style="padding: 12px; border: 1px solid #ddd;">{{product $item.ProductType}}</td>
                        <td style="padding: 12px; border: 1px solid #ddd; text-align: center;">{{$item.Size}}</td>
                        <td style="padding: 12px; border: 1px solid #ddd; text-align: center;">{{$item.Quantity}}</td>
                        <td style="padding: 12px; border: 1px solid #ddd; text-align: right;">{{currency $item.TotalPrice}}</td>
                        <td style="padding: 12px; border: 1px solid #ddd;">
                            <a href="{{attr $item.ArtworkURL}}" target="_blank" style="color: #007bff; font-weight: 600;">Download</a>
                        </td>
                    </tr>
                    <tr>
                        <td colspan="6" style="padding: 10px 12px; border: 1px solid #ddd; background: #fafafa;">
                            <strong>Special Instructions:</strong> {{if $item.Instructions}}{{$item.Instructions}}{{else}}None{{end}}
                        </td>
                    </tr>
{{- end}}
                </tbody>
            </table>

            <div style="background: {{.Brand.Success}}; color: white; padding: 20px; border-radius: 5px; text-align: right;">
                <span style="font-size: 18px;">Order Total: </span>
                <span style="font-size: 28px; font-weight: 700;">{{currency .Total}}</span>
            </div>

            <div style="margin-top: 20px; padding: 15px; background: {{.Brand.Warning}}20; border-left: 4px solid {{.Brand.Warning}}; border-radius: 0 5px 5px 0;">
                <p style="margin: 0; color: #856404;">
                    <strong>Important:</strong> Artwork download links are valid for <strong>7 days</strong>.
                    Please download all artwork files promptly.
                </p>
            </div>
        </div>

{{template "staff_footer"}}
    </div>
</body>
</html>
{{end -}}

{{- define "order_confirmation" -}}
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Order Confirmation - {{.OrderID}}</title>
</head>
{{template "body_open"}}
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
{{template "brand_header" .}}
            <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0; font-size: 16px;">Order Confirmation</p>
        </div>

        <div style="background: #ffffff; padding: 30px; border: 1px solid #e0e0e0; border-top: none;">
            <h2 style="color: #333; margin-top: 0;">Thank you for your order, {{.CustomerInfo.Name}}!</h2>

            <p style="font-size: 16px;">We've received your order and it's being processed. Below are your order details.</p>

            <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 25px 0;">
                <table style="width: 100%;">
                    <tr>
                        <td style="padding: 5px 0;"><strong>Order Number:</strong></td>
                        <td style="padding: 5px 0; text-align: right; color: {{.Brand.Primary}}; font-weight: 600;">{{.OrderID}}</td>
                    </tr>
                    <tr>
                        <td style="padding: 5px 0;"><strong>Order Date:</strong></td>
                        <td style="padding: 5px 0; text-align: right;">{{.DateShort}}</td>
                    </tr>
                </table>
            </div>

            <h3 style="color: #333; border-bottom: 3px solid {{.Brand.Primary}}; padding-bottom: 10px; margin-top: 30px;">Order Items</h3>

            <table style="width: 100%; border-collapse: collapse;">
                <thead>
                    <tr style="background: #f8f9fa;">
                        <th style="padding: 12px; text-align: left;">Product</th>
                        <th style="padding: 12px; text-align: center;">Qty</th>
                        <th style="padding: 12px; text-align: right;">Price</th>
                    </tr>
                </thead>
                <tbody>
{{- range .Items}}
                    <tr>
                        <td style="padding: 15px; border-bottom: 1px solid #eee;">
                            <strong>{{product .ProductType}}</strong><br>
                            <span style="color: #666; font-size: 14px;">Size: {{.Size}}</span>
                        </td>
                        <td style="padding: 15px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
                        <td style="padding: 15px; border-bottom: 1px solid #eee; text-align: right;">{{currency .TotalPrice}}</td>
                    </tr>
{{- end}}
                </tbody>
            </table>

            <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin-top: 20px;">
                <table style="width: 100%;">
                    <tr>
                        <td style="padding: 8px 0;">Subtotal:</td>
                        <td style="padding: 8px 0; text-align: right;">{{currency .Subtotal}}</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0;">Shipping:</td>
                        <td style="padding: 8px 0; text-align: right;">{{shipping .Shipping}}</td>
                    </tr>
                    <tr style="border-top: 2px solid #ddd;">
                        <td style="padding: 12px 0; font-size: 18px;"><strong>Total:</strong></td>
                        <td style="padding: 12px 0; text-align: right; font-size: 22px; color: {{.Brand.Primary}}; font-weight: 700;">{{currency .Total}}</td>
                    </tr>
                </table>
            </div>

            <div style="background: #fff3cd; border: 1px solid {{.Brand.Warning}}; padding: 20px; border-radius: 8px; margin: 25px 0;">
                <h4 style="margin: 0 0 10px 0; color: #856404;">Production & Shipping</h4>
                <p style="margin: 0; color: #856404;">
                    Your order will be produced within <strong>3-5 business days</strong>.
                    You will receive a notification with tracking information once your order ships.
                </p>
            </div>

            <p style="font-size: 16px;">If you have any questions about your order, please don't hesitate to contact us.</p>
        </div>

{{template "customer_footer_open" .}}
            <p style="color: #999; font-size: 12px; margin: 15px 0 0 0;">
                This email was sent regarding order {{.OrderID}}
            </p>
        </div>
    </div>
</body>
</html>
{{end -}}
`
