package usecase

import (
	"context"
	"fmt"
	"strings"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/locale"
	"autoexport-srv/pkg/mailer"
)

var confirmationSubjects = map[string]string{
	locale.EN: "We received your inquiry",
	locale.ZH: "我们已收到您的询价",
	locale.ES: "Hemos recibido su consulta",
	locale.AR: "لقد استلمنا استفساركم",
}

var confirmationBodies = map[string]string{
	locale.EN: "Dear %s,\n\nThank you for your inquiry. Our sales team will contact you within one business day.\n\nAutoExport Sales",
	locale.ZH: "尊敬的 %s：\n\n感谢您的询价。我们的销售团队将在一个工作日内与您联系。\n\nAutoExport 销售团队",
	locale.ES: "Estimado/a %s:\n\nGracias por su consulta. Nuestro equipo de ventas se pondrá en contacto con usted en un día hábil.\n\nVentas AutoExport",
	locale.AR: "عزيزي %s،\n\nشكراً لاستفساركم. سيتواصل معكم فريق المبيعات خلال يوم عمل واحد.\n\nمبيعات AutoExport",
}

func (uc *usecase) sendConfirmation(ctx context.Context, inq model.Inquiry, vehicle *model.Vehicle) {
	lang := locale.GetLang(ctx)

	subject, ok := confirmationSubjects[lang]
	if !ok {
		subject = confirmationSubjects[locale.DefaultLang]
	}
	bodyTmpl, ok := confirmationBodies[lang]
	if !ok {
		bodyTmpl = confirmationBodies[locale.DefaultLang]
	}
	body := fmt.Sprintf(bodyTmpl, inq.ContactName)
	if vehicle != nil {
		body = fmt.Sprintf("%s\n\n%s", vehicle.Name.Resolve(lang), body)
	}

	err := uc.mailer.Send(ctx, mailer.Message{
		To:       []string{inq.Email},
		Subject:  subject,
		TextBody: body,
		HTMLBody: "<p>" + strings.ReplaceAll(body, "\n", "<br>") + "</p>",
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.inquiry.usecase.sendConfirmation.mailer.Send: %v", err)
	}
}

func (uc *usecase) notifySales(ctx context.Context, inq model.Inquiry, vehicle *model.Vehicle) {
	if uc.salesAddr == "" {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New inquiry %s\n\n", inq.ID)
	fmt.Fprintf(&b, "Contact: %s <%s>\n", inq.ContactName, inq.Email)
	if inq.CompanyName != nil {
		fmt.Fprintf(&b, "Company: %s\n", *inq.CompanyName)
	}
	if inq.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *inq.Phone)
	}
	if inq.Country != nil {
		fmt.Fprintf(&b, "Country: %s\n", *inq.Country)
	}
	if inq.Quantity != nil {
		fmt.Fprintf(&b, "Quantity: %d\n", *inq.Quantity)
	}
	if vehicle != nil {
		fmt.Fprintf(&b, "Vehicle: %s (%s)\n", vehicle.Name.Resolve(locale.DefaultLang), vehicle.ID)
	}
	if msg := inq.Message.Resolve(locale.GetLang(ctx)); msg != "" {
		fmt.Fprintf(&b, "\n%s\n", msg)
	}
	body := b.String()

	err := uc.mailer.Send(ctx, mailer.Message{
		To:       []string{uc.salesAddr},
		Subject:  fmt.Sprintf("New inquiry from %s", inq.ContactName),
		TextBody: body,
		HTMLBody: "<p>" + strings.ReplaceAll(body, "\n", "<br>") + "</p>",
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.inquiry.usecase.notifySales.mailer.Send: %v", err)
	}
}
