package site

// defaultSiteContent is written to disk when no site file exists. It is a
// complete worked example for a drainage company so a fresh checkout renders
// something sensible before rebranding.
const defaultSiteContent = `[brand]
name = "Example Drain Heroes"
domain = "exampledrainheroes.co.uk"
primary_location = "Swindon"
service_area_label = "Swindon and surrounding areas"
phone = "01793 000000"
email = "info@exampledrainheroes.co.uk"
tagline = "Fast, Reliable Drainage Solutions"

[[service]]
slug = "blocked-drains"
name = "Blocked Drains"
short_label = "Blocked drains cleared fast"
description = "Professional drain unblocking service using the latest equipment."

  [[service.sub_services]]
  slug = "kitchen-drains"
  name = "Kitchen Drains"

  [[service.sub_services]]
  slug = "outside-drains"
  name = "Outside Drains"

[[service]]
slug = "drain-unblocking"
name = "Drain Unblocking"
short_label = "Sink and toilet unblocking"
description = "Expert unblocking of sinks, toilets, baths, and shower drains."

[[service]]
slug = "cctv-drain-surveys"
name = "CCTV Drain Surveys"
short_label = "CCTV drain inspections"
description = "High-definition CCTV surveys to diagnose drainage issues accurately."

[[service]]
slug = "drain-jetting"
name = "Drain Jetting"
short_label = "High-pressure jetting"
description = "Powerful high-pressure water jetting to clear stubborn blockages."

[[service]]
slug = "emergency-drain-services"
name = "Emergency Drain Services"
short_label = "24/7 emergency callouts"
description = "Round-the-clock emergency drainage services."

[[location]]
slug = "swindon"
name = "Swindon"
region = "Wiltshire"

[[location]]
slug = "royal-wootton-bassett"
name = "Royal Wootton Bassett"
region = "Wiltshire"

[[location]]
slug = "highworth"
name = "Highworth"
region = "Wiltshire"

[[location]]
slug = "purton"
name = "Purton"
region = "Wiltshire"

[[location]]
slug = "cricklade"
name = "Cricklade"
region = "Wiltshire"

[[location]]
slug = "wroughton"
name = "Wroughton"
region = "Wiltshire"
`
